package coordenadores

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"adocato/internal/domain/usuarios"
)

var (
	ErrNotFound = errors.New("coordenador não encontrado")
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

type CreateInput struct {
	Username string
	Senha    string
	Nome     string
	CPF      string
	Apelido  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Coordenador, error) {
	now := s.now()
	c := Coordenador{
		ID: uuid.NewString(),
		Identidade: usuarios.Identidade{
			Username: strings.TrimSpace(in.Username),
			Senha:    in.Senha,
			Nome:     strings.TrimSpace(in.Nome),
			CPF:      strings.TrimSpace(in.CPF),
		},
		Apelido:      strings.TrimSpace(in.Apelido),
		CriadoEm:     now,
		AtualizadoEm: now,
	}

	erros := c.Validar()
	if len(erros["apelido"]) == 0 {
		if _, err := s.repo.GetByApelido(ctx, c.Apelido); err == nil {
			erros.Add("apelido", "Já existe um coordenador com esse apelido.")
		}
	}
	if len(erros["cpf"]) == 0 {
		if _, err := s.repo.GetByCPF(ctx, c.CPF); err == nil {
			erros.Add("cpf", "Já existe um cadastro com esse CPF.")
		}
	}
	if !erros.Vazio() {
		return Coordenador{}, erros
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Coordenador{}, err
	}
	return c, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Coordenador, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Coordenador{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Coordenador, error) {
	return s.repo.List(ctx)
}
