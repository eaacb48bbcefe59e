package racas

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("raça não encontrada")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, nome string) (Raca, error) {
	now := s.now()
	r := Raca{
		ID:           uuid.NewString(),
		Nome:         strings.TrimSpace(nome),
		CriadaEm:     now,
		AtualizadaEm: now,
	}

	erros := r.Validar()
	if erros.Vazio() {
		// Unicidade entra no mesmo mapa de erros das demais regras.
		if _, err := s.repo.GetByNome(ctx, r.Nome); err == nil {
			erros.Add("nome", "Já existe uma raça com esse nome.")
		}
	}
	if !erros.Vazio() {
		return Raca{}, erros
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Raca{}, err
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id, nome string) (Raca, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Raca{}, ErrNotFound
	}

	r.Nome = strings.TrimSpace(nome)
	r.AtualizadaEm = s.now()

	erros := r.Validar()
	if erros.Vazio() {
		if existente, err := s.repo.GetByNome(ctx, r.Nome); err == nil && existente.ID != r.ID {
			erros.Add("nome", "Já existe uma raça com esse nome.")
		}
	}
	if !erros.Vazio() {
		return Raca{}, erros
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return Raca{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Raca, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Raca{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, nome string) ([]Raca, error) {
	return s.repo.List(ctx, strings.TrimSpace(nome))
}
