// Package notificacao implementa o porto de aviso de expedição sobre o
// gateway HTTP (estilo WhatsApp) usado pelo escritório.
package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ravanini/estoque-api/internal/application/movimentacao"
)

var _ movimentacao.Notificador = (*WebhookNotificador)(nil)

// WebhookNotificador envia mensagens de texto via POST JSON para o gateway.
type WebhookNotificador struct {
	url        string
	destino    string
	httpClient *http.Client
}

// NewWebhookNotificador constrói o notificador.
func NewWebhookNotificador(url, destino string) *WebhookNotificador {
	return &WebhookNotificador{
		url:     url,
		destino: destino,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type mensagemWebhook struct {
	Para     string `json:"para"`
	Mensagem string `json:"mensagem"`
}

// EnviarTexto envia a mensagem ao destino configurado.
func (n *WebhookNotificador) EnviarTexto(ctx context.Context, mensagem string) error {
	corpo, err := json.Marshal(mensagemWebhook{Para: n.destino, Mensagem: mensagem})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(corpo))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("enviar notificação: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		detalhe, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway de notificação respondeu %d: %s", resp.StatusCode, detalhe)
	}
	return nil
}
