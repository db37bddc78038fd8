package movimentacao

import "context"

// Notificador é o porto do serviço de aviso de expedição (gateway estilo
// WhatsApp, colaborador externo). Falha de envio nunca derruba a operação
// que a disparou: é logada e seguimos.
type Notificador interface {
	EnviarTexto(ctx context.Context, mensagem string) error
}
