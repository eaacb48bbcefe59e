package racas

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"adocato/internal/domain/validacao"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Raca
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Raca{}}
}

func (r *testRepo) Create(ctx context.Context, raca Raca) error {
	r.byID[raca.ID] = raca
	return nil
}

func (r *testRepo) Update(ctx context.Context, raca Raca) error {
	if _, ok := r.byID[raca.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[raca.ID] = raca
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Raca, error) {
	raca, ok := r.byID[id]
	if !ok {
		return Raca{}, errRepoNotFound
	}
	return raca, nil
}

func (r *testRepo) GetByNome(ctx context.Context, nome string) (Raca, error) {
	for _, raca := range r.byID {
		if strings.EqualFold(raca.Nome, nome) {
			return raca, nil
		}
	}
	return Raca{}, errRepoNotFound
}

func (r *testRepo) List(ctx context.Context, nome string) ([]Raca, error) {
	out := make([]Raca, 0)
	for _, raca := range r.byID {
		if nome != "" && !strings.Contains(strings.ToLower(raca.Nome), strings.ToLower(nome)) {
			continue
		}
		out = append(out, raca)
	}
	return out, nil
}

func TestService_Create_Valida(t *testing.T) {
	svc := NewService(newTestRepo())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	raca, err := svc.Create(context.Background(), "Siamês")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if raca.ID == "" || raca.Nome != "Siamês" {
		t.Fatalf("raça inesperada: %+v", raca)
	}
}

func TestService_Create_NomeCurto(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "ab")
	var erros validacao.Erros
	if !errors.As(err, &erros) {
		t.Fatalf("esperava validacao.Erros, got %v", err)
	}
	if len(erros["nome"]) == 0 {
		t.Fatalf("esperava erro no campo nome, got %v", erros)
	}
}

func TestService_Create_NomeDuplicado(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "Persa"); err != nil {
		t.Fatalf("primeiro Create: %v", err)
	}

	_, err := svc.Create(context.Background(), "Persa")
	var erros validacao.Erros
	if !errors.As(err, &erros) || len(erros["nome"]) == 0 {
		t.Fatalf("esperava erro de nome duplicado, got %v", err)
	}
}

func TestService_Update_NaoEncontrada(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Update(context.Background(), "nope", "Angorá"); err != ErrNotFound {
		t.Fatalf("esperava ErrNotFound, got %v", err)
	}
}
