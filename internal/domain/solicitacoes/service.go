package solicitacoes

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"adocato/internal/domain/adotantes"
	"adocato/internal/domain/coordenadores"
	"adocato/internal/domain/gatos"
	"adocato/internal/platform/metrics"
	"adocato/internal/ports/blob"
)

var (
	ErrNotFound            = errors.New("solicitação não encontrada")
	ErrCoordenadorInvalido = errors.New("coordenador não encontrado")
	// ErrStatusInvalido sinaliza transição fora do fluxo (ex.: recurso
	// de uma solicitação que não foi reprovada).
	ErrStatusInvalido = errors.New("status não permite a operação")
	ErrSemArquivo     = errors.New("arquivo do documento ausente")
)

type Service struct {
	repo          Repository
	gatos         gatos.Repository
	adotantes     adotantes.Repository
	coordenadores coordenadores.Repository
	documentos    blob.Store
	metrics       *metrics.Metrics
	now           func() time.Time
}

func NewService(
	repo Repository,
	gatosRepo gatos.Repository,
	adotantesRepo adotantes.Repository,
	coordenadoresRepo coordenadores.Repository,
	documentos blob.Store,
	m *metrics.Metrics,
) *Service {
	return &Service{
		repo:          repo,
		gatos:         gatosRepo,
		adotantes:     adotantesRepo,
		coordenadores: coordenadoresRepo,
		documentos:    documentos,
		metrics:       m,
		now:           time.Now,
	}
}

// Create abre a solicitação com status EM_ANALISE. O gato precisa estar
// disponível no momento da criação; o adotante é obrigatório.
func (s *Service) Create(ctx context.Context, adotanteID, gatoID string) (Solicitacao, error) {
	sol := Solicitacao{
		ID:         uuid.NewString(),
		AdotanteID: strings.TrimSpace(adotanteID),
		GatoID:     strings.TrimSpace(gatoID),
		Status:     StatusEmAnalise,
		CriadaEm:   s.now(),
	}

	var gato *gatos.Gato
	if sol.GatoID != "" {
		if g, err := s.gatos.GetByID(ctx, sol.GatoID); err == nil {
			gato = &g
		}
	}

	erros := sol.Validar(gato)
	if sol.GatoID != "" && gato == nil {
		erros.Add("gato", "O gato informado não existe.")
	}
	if sol.GatoID == "" {
		erros.Add("gato", "O gato é obrigatório.")
	}
	if sol.AdotanteID != "" {
		if _, err := s.adotantes.GetByID(ctx, sol.AdotanteID); err != nil {
			erros.Add("adotante", "O adotante informado não existe.")
		}
	}
	if !erros.Vazio() {
		return Solicitacao{}, erros
	}

	if err := s.repo.Create(ctx, sol); err != nil {
		return Solicitacao{}, err
	}
	s.metrics.IncSolicitacoesCriadas()
	return sol, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Solicitacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Solicitacao{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filtro) ([]Solicitacao, error) {
	return s.repo.List(ctx, f)
}

// Avaliar registra o parecer do coordenador e decide a solicitação:
// aprovada=true move para APROVADA, senão para REPROVADA.
func (s *Service) Avaliar(ctx context.Context, solicitacaoID, coordenadorID, parecer string, aprovada bool) (Avaliacao, error) {
	sol, err := s.repo.GetByID(ctx, strings.TrimSpace(solicitacaoID))
	if err != nil {
		return Avaliacao{}, ErrNotFound
	}
	if _, err := s.coordenadores.GetByID(ctx, strings.TrimSpace(coordenadorID)); err != nil {
		return Avaliacao{}, ErrCoordenadorInvalido
	}

	now := s.now()
	av := Avaliacao{
		ID:            uuid.NewString(),
		SolicitacaoID: sol.ID,
		CoordenadorID: strings.TrimSpace(coordenadorID),
		Parecer:       strings.TrimSpace(parecer),
		AvaliadaEm:    now,
	}

	if err := s.repo.CreateAvaliacao(ctx, av); err != nil {
		return Avaliacao{}, err
	}

	if aprovada {
		sol.Status = StatusAprovada
	} else {
		sol.Status = StatusReprovada
	}
	if err := s.repo.Update(ctx, sol); err != nil {
		return Avaliacao{}, err
	}

	return av, nil
}

// Recorrer abre recurso de uma solicitação reprovada.
func (s *Service) Recorrer(ctx context.Context, id, texto string) (Solicitacao, error) {
	sol, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Solicitacao{}, ErrNotFound
	}
	if sol.Status != StatusReprovada {
		return Solicitacao{}, ErrStatusInvalido
	}

	sol.Recurso = strings.TrimSpace(texto)
	sol.Status = StatusEmRecurso

	if err := s.repo.Update(ctx, sol); err != nil {
		return Solicitacao{}, err
	}
	return sol, nil
}

// AnexarDocumento grava o arquivo no blob store e registra o documento.
func (s *Service) AnexarDocumento(ctx context.Context, solicitacaoID, descricao, nomeArquivo string, conteudo io.Reader) (Documento, error) {
	sol, err := s.repo.GetByID(ctx, strings.TrimSpace(solicitacaoID))
	if err != nil {
		return Documento{}, ErrNotFound
	}
	if conteudo == nil {
		return Documento{}, ErrSemArquivo
	}

	caminho, err := s.documentos.Save(ctx, "documentos", nomeArquivo, conteudo)
	if err != nil {
		return Documento{}, err
	}

	doc := Documento{
		ID:            uuid.NewString(),
		SolicitacaoID: sol.ID,
		Arquivo:       caminho,
		Descricao:     strings.TrimSpace(descricao),
		EnviadoEm:     s.now(),
	}

	if err := s.repo.CreateDocumento(ctx, doc); err != nil {
		return Documento{}, err
	}
	return doc, nil
}

func (s *Service) ListAvaliacoes(ctx context.Context, solicitacaoID string) ([]Avaliacao, error) {
	return s.repo.ListAvaliacoes(ctx, strings.TrimSpace(solicitacaoID))
}

func (s *Service) ListDocumentos(ctx context.Context, solicitacaoID string) ([]Documento, error) {
	return s.repo.ListDocumentos(ctx, strings.TrimSpace(solicitacaoID))
}

// Atrasada expõe a checagem de prazo com o relógio do service.
func (s *Service) Atrasada(sol Solicitacao) bool {
	return sol.Atrasada(s.now())
}
