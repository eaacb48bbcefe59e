package solicitacoes

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"adocato/internal/domain/adotantes"
	"adocato/internal/domain/coordenadores"
	"adocato/internal/domain/gatos"
	"adocato/internal/domain/validacao"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID       map[string]Solicitacao
	avaliacoes map[string][]Avaliacao
	documentos map[string][]Documento
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:       map[string]Solicitacao{},
		avaliacoes: map[string][]Avaliacao{},
		documentos: map[string][]Documento{},
	}
}

func (r *testRepo) Create(ctx context.Context, s Solicitacao) error {
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Solicitacao) error {
	if _, ok := r.byID[s.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Solicitacao, error) {
	s, ok := r.byID[id]
	if !ok {
		return Solicitacao{}, errRepoNotFound
	}
	return s, nil
}

func (r *testRepo) List(ctx context.Context, f Filtro) ([]Solicitacao, error) {
	out := make([]Solicitacao, 0)
	for _, s := range r.byID {
		if f.AdotanteID != "" && s.AdotanteID != f.AdotanteID {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CriadaEm.After(out[j].CriadaEm) })
	return out, nil
}

func (r *testRepo) CreateAvaliacao(ctx context.Context, a Avaliacao) error {
	r.avaliacoes[a.SolicitacaoID] = append(r.avaliacoes[a.SolicitacaoID], a)
	return nil
}

func (r *testRepo) ListAvaliacoes(ctx context.Context, solicitacaoID string) ([]Avaliacao, error) {
	return r.avaliacoes[solicitacaoID], nil
}

func (r *testRepo) CreateDocumento(ctx context.Context, d Documento) error {
	r.documentos[d.SolicitacaoID] = append(r.documentos[d.SolicitacaoID], d)
	return nil
}

func (r *testRepo) ListDocumentos(ctx context.Context, solicitacaoID string) ([]Documento, error) {
	return r.documentos[solicitacaoID], nil
}

// Stubs mínimos das dependências referenciais.

type testGatosRepo struct {
	byID map[string]gatos.Gato
}

func (r *testGatosRepo) Create(ctx context.Context, g gatos.Gato) error { return nil }
func (r *testGatosRepo) Update(ctx context.Context, g gatos.Gato) error { return nil }
func (r *testGatosRepo) Delete(ctx context.Context, id string) error    { return nil }

func (r *testGatosRepo) GetByID(ctx context.Context, id string) (gatos.Gato, error) {
	g, ok := r.byID[id]
	if !ok {
		return gatos.Gato{}, errRepoNotFound
	}
	return g, nil
}

func (r *testGatosRepo) Search(ctx context.Context, f gatos.Filtro) ([]gatos.Gato, error) {
	return nil, nil
}

func (r *testGatosRepo) ListByRaca(ctx context.Context, racaID string) ([]gatos.Gato, error) {
	return nil, nil
}

type testAdotantesRepo struct {
	ids map[string]bool
}

func (r *testAdotantesRepo) Create(ctx context.Context, a adotantes.Adotante) error { return nil }
func (r *testAdotantesRepo) Update(ctx context.Context, a adotantes.Adotante) error { return nil }

func (r *testAdotantesRepo) GetByID(ctx context.Context, id string) (adotantes.Adotante, error) {
	if !r.ids[id] {
		return adotantes.Adotante{}, errRepoNotFound
	}
	return adotantes.Adotante{ID: id}, nil
}

func (r *testAdotantesRepo) GetByCPF(ctx context.Context, cpf string) (adotantes.Adotante, error) {
	return adotantes.Adotante{}, errRepoNotFound
}

func (r *testAdotantesRepo) List(ctx context.Context) ([]adotantes.Adotante, error) {
	return nil, nil
}

type testCoordenadoresRepo struct {
	ids map[string]bool
}

func (r *testCoordenadoresRepo) Create(ctx context.Context, c coordenadores.Coordenador) error {
	return nil
}

func (r *testCoordenadoresRepo) GetByID(ctx context.Context, id string) (coordenadores.Coordenador, error) {
	if !r.ids[id] {
		return coordenadores.Coordenador{}, errRepoNotFound
	}
	return coordenadores.Coordenador{ID: id}, nil
}

func (r *testCoordenadoresRepo) GetByCPF(ctx context.Context, cpf string) (coordenadores.Coordenador, error) {
	return coordenadores.Coordenador{}, errRepoNotFound
}

func (r *testCoordenadoresRepo) GetByApelido(ctx context.Context, apelido string) (coordenadores.Coordenador, error) {
	return coordenadores.Coordenador{}, errRepoNotFound
}

func (r *testCoordenadoresRepo) List(ctx context.Context) ([]coordenadores.Coordenador, error) {
	return nil, nil
}

var agora = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(
		repo,
		&testGatosRepo{byID: map[string]gatos.Gato{
			"gato-livre":   {ID: "gato-livre", Nome: "Mimimi", Disponivel: true},
			"gato-adotado": {ID: "gato-adotado", Nome: "Tomtom", Disponivel: false},
		}},
		&testAdotantesRepo{ids: map[string]bool{"adotante-1": true}},
		&testCoordenadoresRepo{ids: map[string]bool{"coord-1": true}},
		nil,
		nil,
	)
	svc.now = func() time.Time { return agora }
	return svc, repo
}

func TestService_Create_GatoDisponivel(t *testing.T) {
	svc, _ := newTestService()

	sol, err := svc.Create(context.Background(), "adotante-1", "gato-livre")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sol.Status != StatusEmAnalise {
		t.Fatalf("status inicial = %s, want EM_ANALISE", sol.Status)
	}
	if !sol.CriadaEm.Equal(agora) {
		t.Fatalf("CriadaEm = %v", sol.CriadaEm)
	}
}

func TestService_Create_GatoIndisponivel(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "adotante-1", "gato-adotado")
	var erros validacao.Erros
	if !errors.As(err, &erros) {
		t.Fatalf("esperava validacao.Erros, got %v", err)
	}
	want := "O gato selecionado não está disponível para adoção."
	if len(erros["gato"]) != 1 || erros["gato"][0] != want {
		t.Fatalf("erros[gato] = %v, want [%q]", erros["gato"], want)
	}
}

func TestService_Create_SemAdotante(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "", "gato-livre")
	var erros validacao.Erros
	if !errors.As(err, &erros) || len(erros["adotante"]) == 0 {
		t.Fatalf("esperava erro no campo adotante, got %v", err)
	}
}

func TestService_Create_GatoInexistente(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "adotante-1", "gato-fantasma")
	var erros validacao.Erros
	if !errors.As(err, &erros) || len(erros["gato"]) == 0 {
		t.Fatalf("esperava erro no campo gato, got %v", err)
	}
}

func TestService_Avaliar_DecideStatus(t *testing.T) {
	svc, repo := newTestService()

	sol, err := svc.Create(context.Background(), "adotante-1", "gato-livre")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	av, err := svc.Avaliar(context.Background(), sol.ID, "coord-1", "ótimo lar", true)
	if err != nil {
		t.Fatalf("Avaliar: %v", err)
	}
	if av.SolicitacaoID != sol.ID || av.CoordenadorID != "coord-1" {
		t.Fatalf("avaliação inesperada: %+v", av)
	}
	if !av.AvaliadaEm.Equal(agora) {
		t.Fatalf("AvaliadaEm = %v", av.AvaliadaEm)
	}
	if got := repo.byID[sol.ID].Status; got != StatusAprovada {
		t.Fatalf("status = %s, want APROVADA", got)
	}
}

func TestService_Avaliar_CoordenadorInvalido(t *testing.T) {
	svc, _ := newTestService()

	sol, _ := svc.Create(context.Background(), "adotante-1", "gato-livre")

	if _, err := svc.Avaliar(context.Background(), sol.ID, "intruso", "x", false); !errors.Is(err, ErrCoordenadorInvalido) {
		t.Fatalf("esperava ErrCoordenadorInvalido, got %v", err)
	}
}

func TestService_Recorrer_SoDeReprovada(t *testing.T) {
	svc, repo := newTestService()

	sol, _ := svc.Create(context.Background(), "adotante-1", "gato-livre")

	// Em análise: recurso não cabe.
	if _, err := svc.Recorrer(context.Background(), sol.ID, "injusto"); !errors.Is(err, ErrStatusInvalido) {
		t.Fatalf("esperava ErrStatusInvalido, got %v", err)
	}

	if _, err := svc.Avaliar(context.Background(), sol.ID, "coord-1", "lar pequeno", false); err != nil {
		t.Fatalf("Avaliar: %v", err)
	}

	atualizada, err := svc.Recorrer(context.Background(), sol.ID, "tenho quintal agora")
	if err != nil {
		t.Fatalf("Recorrer: %v", err)
	}
	if atualizada.Status != StatusEmRecurso || atualizada.Recurso != "tenho quintal agora" {
		t.Fatalf("solicitação inesperada: %+v", atualizada)
	}
	if got := repo.byID[sol.ID].Status; got != StatusEmRecurso {
		t.Fatalf("status persistido = %s", got)
	}
}

func TestService_List_FiltraPorStatus(t *testing.T) {
	svc, _ := newTestService()

	s1, _ := svc.Create(context.Background(), "adotante-1", "gato-livre")
	s2, _ := svc.Create(context.Background(), "adotante-1", "gato-livre")
	if _, err := svc.Avaliar(context.Background(), s2.ID, "coord-1", "", false); err != nil {
		t.Fatalf("Avaliar: %v", err)
	}

	reprovadas, err := svc.List(context.Background(), Filtro{Status: StatusReprovada})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reprovadas) != 1 || reprovadas[0].ID != s2.ID {
		t.Fatalf("esperava só %s reprovada, got %+v", s2.ID, reprovadas)
	}

	emAnalise, err := svc.List(context.Background(), Filtro{Status: StatusEmAnalise})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(emAnalise) != 1 || emAnalise[0].ID != s1.ID {
		t.Fatalf("esperava só %s em análise, got %+v", s1.ID, emAnalise)
	}
}
