package gatos

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"adocato/internal/domain/racas"
	"adocato/internal/domain/validacao"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID       map[string]Gato
	vinculados map[string]bool
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:       map[string]Gato{},
		vinculados: map[string]bool{},
	}
}

func (r *testRepo) Create(ctx context.Context, g Gato) error {
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Update(ctx context.Context, g Gato) error {
	if _, ok := r.byID[g.ID]; !ok {
		return ErrNotFound
	}
	r.byID[g.ID] = g
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	if r.vinculados[id] {
		return ErrVinculado
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Gato, error) {
	g, ok := r.byID[id]
	if !ok {
		return Gato{}, ErrNotFound
	}
	return g, nil
}

func (r *testRepo) Search(ctx context.Context, f Filtro) ([]Gato, error) {
	out := make([]Gato, 0)
	for _, g := range r.byID {
		if f.Nome != "" && !strings.Contains(strings.ToLower(g.Nome), strings.ToLower(f.Nome)) {
			continue
		}
		if f.Disponivel != nil && g.Disponivel != *f.Disponivel {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *testRepo) ListByRaca(ctx context.Context, racaID string) ([]Gato, error) {
	out := make([]Gato, 0)
	for _, g := range r.byID {
		if g.RacaID == racaID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

type testRacasRepo struct {
	byID map[string]racas.Raca
}

func newTestRacasRepo(ids ...string) *testRacasRepo {
	r := &testRacasRepo{byID: map[string]racas.Raca{}}
	for _, id := range ids {
		r.byID[id] = racas.Raca{ID: id, Nome: "Raça " + id}
	}
	return r
}

func (r *testRacasRepo) Create(ctx context.Context, raca racas.Raca) error {
	r.byID[raca.ID] = raca
	return nil
}

func (r *testRacasRepo) Update(ctx context.Context, raca racas.Raca) error {
	r.byID[raca.ID] = raca
	return nil
}

func (r *testRacasRepo) GetByID(ctx context.Context, id string) (racas.Raca, error) {
	raca, ok := r.byID[id]
	if !ok {
		return racas.Raca{}, errRepoNotFound
	}
	return raca, nil
}

func (r *testRacasRepo) GetByNome(ctx context.Context, nome string) (racas.Raca, error) {
	return racas.Raca{}, errRepoNotFound
}

func (r *testRacasRepo) List(ctx context.Context, nome string) ([]racas.Raca, error) {
	return nil, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, newTestRacasRepo("raca-1"), nil, nil)
	svc.now = func() time.Time { return hoje }
	return svc, repo
}

func criar(t *testing.T, svc *Service, nome string, disponivel bool) Gato {
	t.Helper()
	g, err := svc.Create(context.Background(), CreateInput{
		Nome:           nome,
		Sexo:           "F",
		Cor:            "preta",
		DataNascimento: dataPtr(2020, time.March, 10),
		RacaID:         "raca-1",
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", nome, err)
	}
	if !disponivel {
		v := false
		g, err = svc.Update(context.Background(), g.ID, UpdateInput{Disponivel: &v})
		if err != nil {
			t.Fatalf("Update(%s): %v", nome, err)
		}
	}
	return g
}

func TestService_Create_NomeCurtoFalhaComMensagemExata(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Nome:           "Mimi",
		Sexo:           "F",
		Cor:            "preta",
		DataNascimento: dataPtr(2020, time.March, 10),
		RacaID:         "raca-1",
	})

	var erros validacao.Erros
	if !errors.As(err, &erros) {
		t.Fatalf("esperava validacao.Erros, got %v", err)
	}
	want := "O nome do gato deve ter pelo menos 5 caracteres."
	if len(erros["nome"]) != 1 || erros["nome"][0] != want {
		t.Fatalf("erros[nome] = %v, want [%q]", erros["nome"], want)
	}
}

func TestService_Create_DefaultDisponivel(t *testing.T) {
	svc, _ := newTestService()

	g := criar(t, svc, "Mimimi", true)
	if !g.Disponivel {
		t.Fatal("gato recém-cadastrado deveria estar disponível")
	}
	if g.CriadoEm != hoje || g.AtualizadoEm != hoje {
		t.Fatalf("timestamps inesperados: %+v", g)
	}
}

func TestService_Create_RacaInexistente(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateInput{
		Nome:           "Mimimi",
		Sexo:           "M",
		Cor:            "cinza",
		DataNascimento: dataPtr(2020, time.March, 10),
		RacaID:         "raca-fantasma",
	})

	var erros validacao.Erros
	if !errors.As(err, &erros) || len(erros["raca"]) == 0 {
		t.Fatalf("esperava erro no campo raca, got %v", err)
	}
}

func TestService_Search_NomeEDisponibilidade(t *testing.T) {
	svc, _ := newTestService()

	criar(t, svc, "Mimimi", true)
	criar(t, svc, "Tomtom", true)
	criar(t, svc, "Miadora", false)

	disponivel := true
	gatos, err := svc.Search(context.Background(), "mi", &disponivel)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(gatos) != 1 || gatos[0].Nome != "Mimimi" {
		t.Fatalf("esperava só Mimimi, got %+v", gatos)
	}
}

func TestService_Search_SemFiltrosOrdenaPorNome(t *testing.T) {
	svc, _ := newTestService()

	criar(t, svc, "Zezinho", true)
	criar(t, svc, "Amora2", false)
	criar(t, svc, "Mimimi", true)

	gatos, err := svc.Search(context.Background(), "", nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(gatos) != 3 {
		t.Fatalf("esperava 3 gatos, got %d", len(gatos))
	}
	for i, nome := range []string{"Amora2", "Mimimi", "Zezinho"} {
		if gatos[i].Nome != nome {
			t.Fatalf("ordem inesperada: %+v", gatos)
		}
	}
}

func TestService_Update_ParcialRevalida(t *testing.T) {
	svc, _ := newTestService()
	g := criar(t, svc, "Mimimi", true)

	nova := "rajada"
	atualizado, err := svc.Update(context.Background(), g.ID, UpdateInput{Cor: &nova})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if atualizado.Cor != "rajada" || atualizado.Nome != "Mimimi" {
		t.Fatalf("patch parcial alterou demais: %+v", atualizado)
	}

	curto := "Mimi"
	_, err = svc.Update(context.Background(), g.ID, UpdateInput{Nome: &curto})
	var erros validacao.Erros
	if !errors.As(err, &erros) || len(erros["nome"]) == 0 {
		t.Fatalf("esperava revalidação do nome, got %v", err)
	}
}

func TestService_Update_NaoEncontrado(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Update(context.Background(), "nope", UpdateInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService()

	g := criar(t, svc, "Mimimi", true)

	removido, err := svc.Delete(context.Background(), "nao-existe")
	if err != nil || removido {
		t.Fatalf("delete de id inexistente: (%v, %v), want (false, nil)", removido, err)
	}
	if len(repo.byID) != 1 {
		t.Fatal("delete de id inexistente não deveria mutar o repo")
	}

	removido, err = svc.Delete(context.Background(), g.ID)
	if err != nil || !removido {
		t.Fatalf("delete de id existente: (%v, %v), want (true, nil)", removido, err)
	}
	if _, err := svc.GetByID(context.Background(), g.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("gato removido ainda recuperável: %v", err)
	}
}

func TestService_Delete_GatoVinculadoFalhaAlto(t *testing.T) {
	svc, repo := newTestService()

	g := criar(t, svc, "Mimimi", true)
	repo.vinculados[g.ID] = true

	removido, err := svc.Delete(context.Background(), g.ID)
	if !errors.Is(err, ErrVinculado) {
		t.Fatalf("esperava ErrVinculado, got (%v, %v)", removido, err)
	}
}
