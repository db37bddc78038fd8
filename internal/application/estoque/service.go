package estoque

import (
	"context"
	"fmt"
	"time"

	"github.com/ravanini/estoque-api/internal/domain"
	"github.com/ravanini/estoque-api/internal/domain/entity"
	"github.com/ravanini/estoque-api/internal/domain/repository"
	"github.com/ravanini/estoque-api/pkg/texto"
)

// ItemContagem é um item submetido numa contagem física.
type ItemContagem struct {
	Produto    string
	Quantidade entity.Quantidade
}

// DiffContagem é o resultado do diff de um item contra o snapshot anterior.
// Anterior é nil para produto sem snapshot prévio — o chamador distingue
// "produto novo" de "sem mudança".
type DiffContagem struct {
	Produto   string             `json:"produto"`
	Anterior  *entity.Quantidade `json:"anterior,omitempty"`
	Novo      entity.Quantidade  `json:"novo"`
	Diferenca entity.Quantidade  `json:"diferenca"`
}

// ResultadoAvaliacao é a saída do dry-run de inventário.
type ResultadoAvaliacao struct {
	Diffs []DiffContagem `json:"diffs"`
	// ProdutosNaoInformados: produtos com snapshot no grupo que ficaram fora
	// da contagem submetida. Só visibilidade para o operador — o commit NÃO
	// zera nem toca esses produtos.
	ProdutosNaoInformados []string              `json:"produtosNaoInformados"`
	EstoqueAtual          []entity.EstoqueAtual `json:"estoqueAtual"`
}

// AplicarInventarioInput é a entrada do commit de contagem.
type AplicarInventarioInput struct {
	Data  time.Time
	Grupo string
	Itens []ItemContagem
}

// ResultadoAplicacao é a saída do commit de contagem.
type ResultadoAplicacao struct {
	Diffs             []DiffContagem        `json:"diffs"`
	EstoqueAtualizado []entity.EstoqueAtual `json:"estoqueAtualizado"`
}

// DeltaInput é a entrada de um ajuste incremental de snapshot.
type DeltaInput struct {
	Grupo   string
	Produto string
	Delta   entity.Quantidade
	// PermitirNegativo libera resultado negativo (débito de saída que pode
	// legitimamente deixar o balde em déficit até a próxima contagem).
	PermitirNegativo bool
}

// CacheEstoque é o porto do cache de leitura do dump completo (relatórios).
// Implementação opcional; nil desliga o cache.
type CacheEstoque interface {
	Obter(ctx context.Context) ([]entity.EstoqueAtual, bool)
	Definir(ctx context.Context, itens []entity.EstoqueAtual)
	Invalidar(ctx context.Context)
}

// Service orquestra o snapshot de estoque, o log de contagens e o resolver
// de grupos. É o único caminho de mutação do snapshot.
//
// O armazenamento não oferece transação nem lock: cada sequência
// ler-calcular-gravar é mantida no menor número possível de chamadas remotas
// e a contagem absoluta é o ponto periódico de ressincronização que absorve
// qualquer deriva acumulada.
type Service struct {
	estoqueRepo  repository.EstoqueRepository
	contagemRepo repository.ContagemRepository
	grupos       *GrupoResolver
	cache        CacheEstoque
}

// NovoService constrói o serviço. cache pode ser nil.
func NovoService(
	estoqueRepo repository.EstoqueRepository,
	contagemRepo repository.ContagemRepository,
	grupos *GrupoResolver,
	cache CacheEstoque,
) *Service {
	return &Service{
		estoqueRepo:  estoqueRepo,
		contagemRepo: contagemRepo,
		grupos:       grupos,
		cache:        cache,
	}
}

// Grupos expõe o resolver (o serviço de movimentação resolve o grupo do
// cliente antes de debitar).
func (s *Service) Grupos() *GrupoResolver { return s.grupos }

// ObterEstoqueCliente devolve todos os snapshots do grupo resolvido.
// Resultado vazio é válido (grupo novo), não é erro.
func (s *Service) ObterEstoqueCliente(ctx context.Context, grupo string) ([]entity.EstoqueAtual, error) {
	return s.estoqueRepo.ListarPorGrupo(ctx, grupo)
}

// ObterTodosEstoques devolve o dump completo para relatórios. Linhas
// malformadas já foram puladas pelo repositório.
func (s *Service) ObterTodosEstoques(ctx context.Context) ([]entity.EstoqueAtual, error) {
	if s.cache != nil {
		if itens, ok := s.cache.Obter(ctx); ok {
			return itens, nil
		}
	}
	itens, err := s.estoqueRepo.ListarTodos(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Definir(ctx, itens)
	}
	return itens, nil
}

// ListarContagens devolve o log de contagens físicas (trilha de auditoria).
func (s *Service) ListarContagens(ctx context.Context) ([]entity.RegistroContagem, error) {
	return s.contagemRepo.Listar(ctx)
}

// ObterTipoEstoqueCliente é o lookup puro do grupo configurado; ok == false
// significa "use a identidade do próprio cliente", não é erro.
func (s *Service) ObterTipoEstoqueCliente(cliente string) (string, bool) {
	return s.grupos.Mapeado(cliente)
}

// AvaliarInventario é o dry-run da contagem: calcula os diffs contra o
// snapshot vigente sem mutar nada.
func (s *Service) AvaliarInventario(ctx context.Context, grupo string, itens []ItemContagem) (*ResultadoAvaliacao, error) {
	if err := validarItens(itens); err != nil {
		return nil, err
	}
	atual, err := s.estoqueRepo.ListarPorGrupo(ctx, grupo)
	if err != nil {
		return nil, err
	}
	diffs, naoInformados := calcularDiffs(atual, itens)
	return &ResultadoAvaliacao{
		Diffs:                 diffs,
		ProdutosNaoInformados: naoInformados,
		EstoqueAtual:          atual,
	}, nil
}

// AplicarInventario comete a contagem: para cada item acrescenta um registro
// no log de auditoria e sobrescreve o snapshot com a quantidade contada.
//
// Não há atomicidade entre itens. Falhas parciais voltam como
// *domain.ErroCommitParcial enumerando os itens já aplicados, para o chamador
// reenviar só o restante. Repetir o payload inteiro também converge: o diff é
// recalculado contra o estado parcial e o snapshot final é o mesmo, ao custo
// de linhas duplicadas na trilha de auditoria (aceitável: o log é histórico,
// não máquina de estados).
func (s *Service) AplicarInventario(ctx context.Context, in AplicarInventarioInput) (*ResultadoAplicacao, error) {
	if in.Grupo == "" || len(in.Itens) == 0 {
		return nil, fmt.Errorf("%w: grupo e itens são obrigatórios", domain.ErrEntradaInvalida)
	}
	if in.Data.IsZero() {
		return nil, fmt.Errorf("%w: data da contagem ausente ou malformada", domain.ErrEntradaInvalida)
	}
	if err := validarItens(in.Itens); err != nil {
		return nil, err
	}

	atual, err := s.estoqueRepo.ListarPorGrupo(ctx, in.Grupo)
	if err != nil {
		return nil, err
	}
	diffs, _ := calcularDiffs(atual, in.Itens)

	agora := time.Now()
	resultado := &ResultadoAplicacao{Diffs: diffs}
	var (
		sucedidos []string
		falhas    []domain.FalhaItem
	)
	for _, item := range in.Itens {
		// Par acrescentar-no-log + sobrescrever-snapshot de um item é tratado
		// como unidade: falha em qualquer metade marca o item como falho.
		if err := s.aplicarItemContagem(ctx, in, item, agora); err != nil {
			falhas = append(falhas, domain.FalhaItem{Produto: item.Produto, Err: err})
			continue
		}
		sucedidos = append(sucedidos, item.Produto)
		resultado.EstoqueAtualizado = append(resultado.EstoqueAtualizado, entity.EstoqueAtual{
			Grupo:          in.Grupo,
			Produto:        item.Produto,
			Quantidade:     item.Quantidade,
			UltimaContagem: &agora,
			AtualizadoEm:   agora,
		})
	}
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
	if len(falhas) > 0 {
		return resultado, &domain.ErroCommitParcial{Sucedidos: sucedidos, Falhas: falhas}
	}
	return resultado, nil
}

func (s *Service) aplicarItemContagem(ctx context.Context, in AplicarInventarioInput, item ItemContagem, agora time.Time) error {
	registro := &entity.RegistroContagem{
		Data:         in.Data,
		Grupo:        in.Grupo,
		Produto:      item.Produto,
		Quantidade:   item.Quantidade,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if err := s.contagemRepo.Acrescentar(ctx, registro); err != nil {
		return err
	}
	return s.estoqueRepo.Salvar(ctx, &entity.EstoqueAtual{
		Grupo:          in.Grupo,
		Produto:        item.Produto,
		Quantidade:     item.Quantidade,
		UltimaContagem: &agora,
		AtualizadoEm:   agora,
	})
}

// DefinirQuantidadeAbsoluta sobrescreve o snapshot direto, sem passar pelo
// caminho contagem/diff/auditoria. Correção administrativa: nenhum registro
// de auditoria é gerado aqui; quem chama registra externamente se precisar.
func (s *Service) DefinirQuantidadeAbsoluta(ctx context.Context, grupo, produto string, quantidade entity.Quantidade) error {
	if grupo == "" || produto == "" {
		return fmt.Errorf("%w: grupo e produto são obrigatórios", domain.ErrEntradaInvalida)
	}
	if quantidade.TemNegativo() {
		return fmt.Errorf("%w: quantidade absoluta não pode ser negativa", domain.ErrEntradaInvalida)
	}
	existente, err := s.estoqueRepo.Buscar(ctx, grupo, produto)
	if err != nil {
		return err
	}
	novo := &entity.EstoqueAtual{
		Grupo:        grupo,
		Produto:      produto,
		Quantidade:   quantidade,
		AtualizadoEm: time.Now(),
	}
	if existente != nil {
		// Não é contagem: preserva o carimbo da última contagem real.
		novo.UltimaContagem = existente.UltimaContagem
	}
	if err := s.estoqueRepo.Salvar(ctx, novo); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
	return nil
}

// AplicarDelta ajusta o snapshot pela soma algébrica do delta, dimensão a
// dimensão. Com PermitirNegativo falso (default), qualquer dimensão que
// ficaria negativa aborta a operação inteira sem mutação (tudo-ou-nada por
// chamada).
func (s *Service) AplicarDelta(ctx context.Context, in DeltaInput) (*entity.EstoqueAtual, error) {
	if in.Grupo == "" || in.Produto == "" {
		return nil, fmt.Errorf("%w: grupo e produto são obrigatórios", domain.ErrEntradaInvalida)
	}
	existente, err := s.estoqueRepo.Buscar(ctx, in.Grupo, in.Produto)
	if err != nil {
		return nil, err
	}
	base := entity.QuantidadeZero()
	var ultimaContagem *time.Time
	if existente != nil {
		base = existente.Quantidade
		ultimaContagem = existente.UltimaContagem
	}
	nova := base.Somar(in.Delta)
	if !in.PermitirNegativo && nova.TemNegativo() {
		return nil, fmt.Errorf("%w: produto %q no grupo %q", domain.ErrQuantidadeNegativa, in.Produto, in.Grupo)
	}
	atualizado := &entity.EstoqueAtual{
		Grupo:          in.Grupo,
		Produto:        in.Produto,
		Quantidade:     nova,
		UltimaContagem: ultimaContagem,
		AtualizadoEm:   time.Now(),
	}
	if err := s.estoqueRepo.Salvar(ctx, atualizado); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidar(ctx)
	}
	return atualizado, nil
}

// validarItens aplica a pré-condição do contrato: produto preenchido e
// nenhuma dimensão negativa, rejeitado antes de qualquer mutação.
func validarItens(itens []ItemContagem) error {
	for _, item := range itens {
		if item.Produto == "" {
			return fmt.Errorf("%w: item sem produto", domain.ErrEntradaInvalida)
		}
		if item.Quantidade.TemNegativo() {
			return fmt.Errorf("%w: quantidade negativa para o produto %q", domain.ErrEntradaInvalida, item.Produto)
		}
	}
	return nil
}

// calcularDiffs produz o diff de cada item contra o snapshot vigente e a
// lista de produtos do grupo que ficaram fora da contagem.
func calcularDiffs(atual []entity.EstoqueAtual, itens []ItemContagem) ([]DiffContagem, []string) {
	porProduto := make(map[string]entity.EstoqueAtual, len(atual))
	for _, e := range atual {
		porProduto[texto.Chave(e.Produto)] = e
	}

	informados := make(map[string]bool, len(itens))
	diffs := make([]DiffContagem, 0, len(itens))
	for _, item := range itens {
		chave := texto.Chave(item.Produto)
		informados[chave] = true
		diff := DiffContagem{Produto: item.Produto, Novo: item.Quantidade}
		if snapshot, ok := porProduto[chave]; ok {
			anterior := snapshot.Quantidade
			diff.Anterior = &anterior
			diff.Diferenca = item.Quantidade.Subtrair(anterior)
		} else {
			// Produto novo: diff contra zero, mas Anterior fica ausente para
			// o chamador distinguir de "já existia zerado".
			diff.Diferenca = item.Quantidade.Subtrair(entity.QuantidadeZero())
		}
		diffs = append(diffs, diff)
	}

	var naoInformados []string
	for _, e := range atual {
		if !informados[texto.Chave(e.Produto)] {
			naoInformados = append(naoInformados, e.Produto)
		}
	}
	return diffs, naoInformados
}
