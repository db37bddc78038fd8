package movimentacao

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ravanini/estoque-api/internal/application/estoque"
	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/logger"
)

// RegistrarInput é a entrada da criação de uma movimentação de saída.
type RegistrarInput struct {
	Data       time.Time
	Cliente    string
	Produto    string
	Observacao string
	Meta       entity.Quantidade
	Realizado  entity.Quantidade
	FotoURL    string
}

// AtualizarMetaInput altera só a meta e a observação de uma movimentação.
type AtualizarMetaInput struct {
	Meta       entity.Quantidade
	Observacao string
}

// Service orquestra o razão de saídas e mantém o snapshot de estoque
// sincronizado com os eventos do razão.
//
// Criar uma movimentação NÃO é idempotente: repetir a chamada cria linha
// duplicada e debita o estoque duas vezes. Retry automático tem que ser
// barrado antes daqui (deduplicação no formulário).
type Service struct {
	movRepo     repository.MovimentacaoRepository
	estoqueSvc  *estoque.Service
	notificador Notificador // pode ser nil
	log         *logger.Logger
}

// NovoService constrói o serviço. notificador pode ser nil.
func NovoService(
	movRepo repository.MovimentacaoRepository,
	estoqueSvc *estoque.Service,
	notificador Notificador,
	log *logger.Logger,
) *Service {
	return &Service{
		movRepo:     movRepo,
		estoqueSvc:  estoqueSvc,
		notificador: notificador,
		log:         log,
	}
}

// Registrar resolve o grupo do cliente, acrescenta a linha no razão e debita
// o snapshot pelo realizado negado. Saída pode levar o balde a negativo de
// propósito (PermitirNegativo) — a próxima contagem corrige.
func (s *Service) Registrar(ctx context.Context, in RegistrarInput) (*entity.Movimentacao, error) {
	if in.Cliente == "" || in.Produto == "" {
		return nil, fmt.Errorf("%w: cliente e produto são obrigatórios", domain.ErrEntradaInvalida)
	}
	if in.Data.IsZero() {
		return nil, fmt.Errorf("%w: data ausente ou malformada", domain.ErrEntradaInvalida)
	}
	if in.Meta.TemNegativo() || in.Realizado.TemNegativo() {
		return nil, fmt.Errorf("%w: meta e realizado não podem ter dimensão negativa", domain.ErrEntradaInvalida)
	}

	agora := time.Now()
	mov := &entity.Movimentacao{
		ID:           uuid.New().String(),
		Data:         in.Data,
		Cliente:      in.Cliente,
		Produto:      in.Produto,
		Observacao:   in.Observacao,
		Meta:         in.Meta,
		Realizado:    in.Realizado,
		FotoURL:      in.FotoURL,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if err := s.movRepo.Acrescentar(ctx, mov); err != nil {
		return nil, err
	}

	if !in.Realizado.EhZero() {
		grupo := s.estoqueSvc.Grupos().Resolver(in.Cliente)
		_, err := s.estoqueSvc.AplicarDelta(ctx, estoque.DeltaInput{
			Grupo:            grupo,
			Produto:          in.Produto,
			Delta:            in.Realizado.Negada(),
			PermitirNegativo: true,
		})
		if err != nil {
			// Linha já gravada, débito não: o chamador precisa saber que o
			// razão e o snapshot divergiram.
			return nil, fmt.Errorf("movimentação %s gravada mas débito de estoque falhou: %w", mov.ID, err)
		}
	}

	s.notificarRegistro(ctx, mov)
	return mov, nil
}

// AtualizarMeta reescreve meta e observação. Nunca toca realizado nem o
// snapshot de estoque.
func (s *Service) AtualizarMeta(ctx context.Context, id string, in AtualizarMetaInput) error {
	if in.Meta.TemNegativo() {
		return fmt.Errorf("%w: meta não pode ter dimensão negativa", domain.ErrEntradaInvalida)
	}
	return s.movRepo.AtualizarMeta(ctx, id, in.Meta, in.Observacao)
}

// Obter devolve a movimentação, ou ErrNaoEncontrado se o ID não existe mais.
func (s *Service) Obter(ctx context.Context, id string) (*entity.Movimentacao, error) {
	mov, err := s.movRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return mov, nil
}

// Excluir estorna e remove uma movimentação. O crédito do realizado no
// snapshot acontece ANTES da exclusão estrutural: o armazenamento permite a
// ordem segura, então o caso ruim (linha sumiu, estorno não entrou) não
// ocorre aqui. O risco residual é o inverso — estorno entrou e a exclusão
// falhou; nesse caso repetir Excluir creditaria de novo, então a falha é
// reportada para correção manual (a próxima contagem absoluta absorve a
// deriva de qualquer forma).
func (s *Service) Excluir(ctx context.Context, id string) error {
	mov, err := s.movRepo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNaoEncontrado
	}

	if !mov.Realizado.EhZero() {
		grupo := s.estoqueSvc.Grupos().Resolver(mov.Cliente)
		_, err := s.estoqueSvc.AplicarDelta(ctx, estoque.DeltaInput{
			Grupo:   grupo,
			Produto: mov.Produto,
			Delta:   mov.Realizado, // crédito de volta, positivo
		})
		if err != nil {
			return fmt.Errorf("estorno da movimentação %s falhou, linha mantida: %w", id, err)
		}
	}

	if err := s.movRepo.Excluir(ctx, id); err != nil {
		// Janela de inconsistência conhecida: crédito já aplicado, linha
		// ainda no razão. NÃO repetir Excluir às cegas (creditaria de novo).
		return fmt.Errorf("movimentação %s estornada mas exclusão da linha falhou: %w", id, err)
	}
	return nil
}

// ListarPorData devolve as movimentações do dia (formato 2006-01-02).
func (s *Service) ListarPorData(ctx context.Context, data string) ([]entity.Movimentacao, error) {
	return s.movRepo.ListarPorData(ctx, data)
}

// Listar devolve o razão inteiro (relatórios).
func (s *Service) Listar(ctx context.Context) ([]entity.Movimentacao, error) {
	return s.movRepo.Listar(ctx)
}

func (s *Service) notificarRegistro(ctx context.Context, mov *entity.Movimentacao) {
	if s.notificador == nil {
		return
	}
	msg := fmt.Sprintf("Saída registrada: %s → %s (%s)",
		mov.Produto, mov.Cliente, mov.Data.Format("02/01/2006"))
	if err := s.notificador.EnviarTexto(ctx, msg); err != nil {
		s.log.Warn().Err(err).Str("movimentacao", mov.ID).Msg("aviso de expedição não enviado")
	}
}
