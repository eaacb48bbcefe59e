package gatos

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"adocato/internal/domain/racas"
	"adocato/internal/platform/metrics"
	"adocato/internal/ports/blob"
)

var (
	ErrNotFound = errors.New("gato não encontrado")
	// ErrVinculado sinaliza exclusão bloqueada por solicitação existente.
	// A restrição falha alto em vez de sumir no store (ver DESIGN.md).
	ErrVinculado = errors.New("gato vinculado a solicitação de adoção")

	ErrSemFoto = errors.New("arquivo de foto ausente")
)

type Service struct {
	repo    Repository
	racas   racas.Repository
	fotos   blob.Store
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, racasRepo racas.Repository, fotos blob.Store, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		racas:   racasRepo,
		fotos:   fotos,
		metrics: m,
		now:     time.Now,
	}
}

type CreateInput struct {
	Nome           string
	Sexo           string
	Cor            string
	DataNascimento *time.Time
	RacaID         string
	Descricao      string
	Foto           string
}

// Create monta o gato com disponivel=true, valida e persiste.
func (s *Service) Create(ctx context.Context, in CreateInput) (Gato, error) {
	now := s.now()
	g := Gato{
		ID:             uuid.NewString(),
		RacaID:         strings.TrimSpace(in.RacaID),
		Nome:           strings.TrimSpace(in.Nome),
		Sexo:           Sexo(strings.TrimSpace(in.Sexo)),
		Cor:            strings.TrimSpace(in.Cor),
		Descricao:      strings.TrimSpace(in.Descricao),
		Foto:           strings.TrimSpace(in.Foto),
		DataNascimento: in.DataNascimento,
		Disponivel:     true,
		CriadoEm:       now,
		AtualizadoEm:   now,
	}

	erros := g.Validar(now)
	if _, err := s.racas.GetByID(ctx, g.RacaID); err != nil {
		erros.Add("raca", "A raça informada não existe.")
	}
	if !erros.Vazio() {
		return Gato{}, erros
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return Gato{}, err
	}
	s.metrics.IncGatosCadastrados()
	return g, nil
}

type UpdateInput struct {
	// Ponteiros para PATCH real: nil = não tocar.
	Nome           *string
	Sexo           *string
	Cor            *string
	DataNascimento *time.Time
	RacaID         *string
	Descricao      *string
	Foto           *string
	Disponivel     *bool
}

// Update aplica só os campos informados e revalida a entidade inteira.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Gato, error) {
	g, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Gato{}, ErrNotFound
	}

	if in.Nome != nil {
		g.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.Sexo != nil {
		g.Sexo = Sexo(strings.TrimSpace(*in.Sexo))
	}
	if in.Cor != nil {
		g.Cor = strings.TrimSpace(*in.Cor)
	}
	if in.DataNascimento != nil {
		d := *in.DataNascimento
		g.DataNascimento = &d
	}
	if in.RacaID != nil {
		g.RacaID = strings.TrimSpace(*in.RacaID)
	}
	if in.Descricao != nil {
		g.Descricao = strings.TrimSpace(*in.Descricao)
	}
	if in.Foto != nil {
		g.Foto = strings.TrimSpace(*in.Foto)
	}
	if in.Disponivel != nil {
		g.Disponivel = *in.Disponivel
	}

	now := s.now()
	g.AtualizadoEm = now

	erros := g.Validar(now)
	if in.RacaID != nil {
		if _, err := s.racas.GetByID(ctx, g.RacaID); err != nil {
			erros.Add("raca", "A raça informada não existe.")
		}
	}
	if !erros.Vazio() {
		return Gato{}, erros
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return Gato{}, err
	}
	return g, nil
}

// Delete devolve false quando o id não existe (ausência não é falha).
// Exclusão bloqueada por solicitação propaga ErrVinculado.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Gato, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Gato{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Search: nome filtra por substring (case-insensitive), disponivel por
// igualdade; filtros omitidos são no-ops. Ordenação por nome asc.
func (s *Service) Search(ctx context.Context, nome string, disponivel *bool) ([]Gato, error) {
	return s.repo.Search(ctx, Filtro{
		Nome:       strings.TrimSpace(nome),
		Disponivel: disponivel,
	})
}

func (s *Service) ListByRaca(ctx context.Context, racaID string) ([]Gato, error) {
	return s.repo.ListByRaca(ctx, strings.TrimSpace(racaID))
}

func (s *Service) ListDisponiveis(ctx context.Context) ([]Gato, error) {
	disponivel := true
	return s.repo.Search(ctx, Filtro{Disponivel: &disponivel})
}

// AnexarFoto grava os bytes no blob store e guarda só o caminho.
func (s *Service) AnexarFoto(ctx context.Context, id, nomeArquivo string, conteudo io.Reader) (Gato, error) {
	g, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Gato{}, ErrNotFound
	}
	if conteudo == nil {
		return Gato{}, ErrSemFoto
	}

	caminho, err := s.fotos.Save(ctx, "gatos", nomeArquivo, conteudo)
	if err != nil {
		return Gato{}, err
	}

	g.Foto = caminho
	g.AtualizadoEm = s.now()

	if err := s.repo.Update(ctx, g); err != nil {
		return Gato{}, err
	}
	return g, nil
}
