package entity

import "time"

// RegistroContagem é uma linha do log de contagens físicas.
// O log é trilha de auditoria pura: append-only, nunca editado nem apagado
// pelo motor. Uma recontagem do mesmo produto gera uma linha nova.
type RegistroContagem struct {
	Data         time.Time  `json:"data"` // dia da contagem (sem hora)
	Grupo        string     `json:"grupo"`
	Produto      string     `json:"produto"`
	Quantidade   Quantidade `json:"quantidade"` // quantidade contada (absoluta)
	CriadoEm     time.Time  `json:"criadoEm"`
	AtualizadoEm time.Time  `json:"atualizadoEm"`
}
