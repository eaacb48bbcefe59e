package adotantes

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"adocato/internal/domain/usuarios"
	"adocato/internal/ports/blob"
)

var (
	ErrNotFound = errors.New("adotante não encontrado")
	ErrSemFoto  = errors.New("arquivo de foto ausente")
)

type Service struct {
	repo  Repository
	fotos blob.Store
	now   func() time.Time
}

func NewService(repo Repository, fotos blob.Store) *Service {
	return &Service{
		repo:  repo,
		fotos: fotos,
		now:   time.Now,
	}
}

type CreateInput struct {
	Username       string
	Senha          string
	Nome           string
	CPF            string
	DataNascimento *time.Time
	Telefone       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Adotante, error) {
	now := s.now()
	a := Adotante{
		ID: uuid.NewString(),
		Identidade: usuarios.Identidade{
			Username: strings.TrimSpace(in.Username),
			Senha:    in.Senha,
			Nome:     strings.TrimSpace(in.Nome),
			CPF:      strings.TrimSpace(in.CPF),
		},
		DataNascimento: in.DataNascimento,
		Telefone:       strings.TrimSpace(in.Telefone),
		CriadoEm:       now,
		AtualizadoEm:   now,
	}

	erros := a.Validar(now)
	if len(erros["cpf"]) == 0 {
		if _, err := s.repo.GetByCPF(ctx, a.CPF); err == nil {
			erros.Add("cpf", "Já existe um cadastro com esse CPF.")
		}
	}
	if !erros.Vazio() {
		return Adotante{}, erros
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Adotante{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Adotante, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Adotante{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Adotante, error) {
	return s.repo.List(ctx)
}

func (s *Service) AnexarFoto(ctx context.Context, id, nomeArquivo string, conteudo io.Reader) (Adotante, error) {
	a, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Adotante{}, ErrNotFound
	}
	if conteudo == nil {
		return Adotante{}, ErrSemFoto
	}

	caminho, err := s.fotos.Save(ctx, "adotantes", nomeArquivo, conteudo)
	if err != nil {
		return Adotante{}, err
	}

	a.Foto = caminho
	a.AtualizadoEm = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Adotante{}, err
	}
	return a, nil
}
