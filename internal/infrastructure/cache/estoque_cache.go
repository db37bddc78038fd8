// Package cache implementa o cache de leitura do dump de estoque sobre
// Redis. É acelerador de relatório, nunca fonte de verdade: qualquer falha
// do Redis vira cache miss e a leitura segue para a planilha.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/pkg/logger"
)

var _ estoque.CacheEstoque = (*EstoqueCache)(nil)

const chaveDump = "estoque:todos"

// EstoqueCache guarda o dump completo de snapshots com TTL curto e é
// invalidado em toda mutação.
type EstoqueCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

// NovoEstoqueCache constrói o cache sobre um client Redis já configurado.
func NovoEstoqueCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *EstoqueCache {
	return &EstoqueCache{rdb: rdb, ttl: ttl, log: log}
}

func (c *EstoqueCache) Obter(ctx context.Context) ([]entity.EstoqueAtual, bool) {
	dados, err := c.rdb.Get(ctx, chaveDump).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Msg("cache de estoque indisponível, lendo da planilha")
		}
		return nil, false
	}
	var itens []entity.EstoqueAtual
	if err := json.Unmarshal(dados, &itens); err != nil {
		c.log.Warn().Err(err).Msg("cache de estoque corrompido, descartando")
		c.Invalidar(ctx)
		return nil, false
	}
	return itens, true
}

func (c *EstoqueCache) Definir(ctx context.Context, itens []entity.EstoqueAtual) {
	dados, err := json.Marshal(itens)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, chaveDump, dados, c.ttl).Err(); err != nil {
		c.log.Debug().Err(err).Msg("não deu para gravar o cache de estoque")
	}
}

func (c *EstoqueCache) Invalidar(ctx context.Context) {
	if err := c.rdb.Del(ctx, chaveDump).Err(); err != nil {
		c.log.Debug().Err(err).Msg("não deu para invalidar o cache de estoque")
	}
}
