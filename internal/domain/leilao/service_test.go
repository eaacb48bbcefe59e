package leilao

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"
)

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	participantes map[string]Participante
	leiloes       map[string]Leilao
	itens         map[string]ItemLeilao
	lances        map[string][]Lance
}

func newTestRepo() *testRepo {
	return &testRepo{
		participantes: map[string]Participante{},
		leiloes:       map[string]Leilao{},
		itens:         map[string]ItemLeilao{},
		lances:        map[string][]Lance{},
	}
}

func (r *testRepo) CreateParticipante(ctx context.Context, p Participante) error {
	r.participantes[p.ID] = p
	return nil
}

func (r *testRepo) GetParticipante(ctx context.Context, id string) (Participante, error) {
	p, ok := r.participantes[id]
	if !ok {
		return Participante{}, errRepoNotFound
	}
	return p, nil
}

func (r *testRepo) CreateLeilao(ctx context.Context, l Leilao) error {
	r.leiloes[l.ID] = l
	return nil
}

func (r *testRepo) GetLeilao(ctx context.Context, id string) (Leilao, error) {
	l, ok := r.leiloes[id]
	if !ok {
		return Leilao{}, errRepoNotFound
	}
	return l, nil
}

func (r *testRepo) ListLeiloes(ctx context.Context) ([]Leilao, error) {
	out := make([]Leilao, 0, len(r.leiloes))
	for _, l := range r.leiloes {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Inicio.Before(out[j].Inicio) })
	return out, nil
}

func (r *testRepo) CreateItem(ctx context.Context, i ItemLeilao) error {
	r.itens[i.ID] = i
	return nil
}

func (r *testRepo) GetItem(ctx context.Context, id string) (ItemLeilao, error) {
	i, ok := r.itens[id]
	if !ok {
		return ItemLeilao{}, errRepoNotFound
	}
	return i, nil
}

func (r *testRepo) ListItens(ctx context.Context, leilaoID, titulo string) ([]ItemLeilao, error) {
	out := make([]ItemLeilao, 0)
	for _, i := range r.itens {
		if i.LeilaoID != leilaoID {
			continue
		}
		if titulo != "" && !strings.Contains(strings.ToLower(i.Titulo), strings.ToLower(titulo)) {
			continue
		}
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Titulo < out[j].Titulo })
	return out, nil
}

func (r *testRepo) CreateLance(ctx context.Context, l Lance) error {
	r.lances[l.ItemID] = append(r.lances[l.ItemID], l)
	return nil
}

func (r *testRepo) CountLances(ctx context.Context, itemID string) (int, error) {
	return len(r.lances[itemID]), nil
}

var agora = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	svc.now = func() time.Time { return agora }
	return svc, repo
}

func TestService_RegistrarLance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.CreateParticipante(ctx, "Dona Clotilde", "clotilde@vila.br", "Rua 8, casa 72")
	if err != nil {
		t.Fatalf("CreateParticipante: %v", err)
	}
	leilao, err := svc.CreateLeilao(ctx, agora, agora.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("CreateLeilao: %v", err)
	}
	item, err := svc.CreateItem(ctx, leilao.ID, "Barril antigo", "", 50)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	lance, err := svc.RegistrarLance(ctx, item.ID, p.ID, 75.5)
	if err != nil {
		t.Fatalf("RegistrarLance: %v", err)
	}
	if lance.Valor != 75.5 {
		t.Fatalf("Valor = %v", lance.Valor)
	}
	if !lance.HoraLance.Equal(agora) {
		t.Fatalf("HoraLance = %v, want %v", lance.HoraLance, agora)
	}
}

func TestService_RegistrarLance_ParticipanteInvalido(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	leilao, _ := svc.CreateLeilao(ctx, agora, agora.Add(time.Hour))
	item, _ := svc.CreateItem(ctx, leilao.ID, "Barril antigo", "", 50)

	if _, err := svc.RegistrarLance(ctx, item.ID, "intruso", 100); !errors.Is(err, ErrParticipanteInvalido) {
		t.Fatalf("esperava ErrParticipanteInvalido, got %v", err)
	}
}

func TestService_RegistrarLance_ItemInexistente(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.RegistrarLance(context.Background(), "item-fantasma", "alguem", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, got %v", err)
	}
}

func TestService_Relatorio_ContaLancesPorItem(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p1, _ := svc.CreateParticipante(ctx, "Dona Clotilde", "", "")
	p2, _ := svc.CreateParticipante(ctx, "Seu Madruga", "", "")
	leilao, _ := svc.CreateLeilao(ctx, agora, agora.Add(time.Hour))

	barril, _ := svc.CreateItem(ctx, leilao.ID, "Barril antigo", "", 50)
	violao, _ := svc.CreateItem(ctx, leilao.ID, "Violão", "", 30)

	if _, err := svc.RegistrarLance(ctx, barril.ID, p1.ID, 60); err != nil {
		t.Fatalf("RegistrarLance: %v", err)
	}
	if _, err := svc.RegistrarLance(ctx, barril.ID, p2.ID, 70); err != nil {
		t.Fatalf("RegistrarLance: %v", err)
	}
	if _, err := svc.RegistrarLance(ctx, violao.ID, p2.ID, 35); err != nil {
		t.Fatalf("RegistrarLance: %v", err)
	}

	linhas, err := svc.Relatorio(ctx, leilao.ID, "")
	if err != nil {
		t.Fatalf("Relatorio: %v", err)
	}
	if len(linhas) != 2 {
		t.Fatalf("len(linhas) = %d", len(linhas))
	}

	totais := map[string]int{}
	for _, linha := range linhas {
		totais[linha.Titulo] = linha.TotalLances
	}
	if totais["Barril antigo"] != 2 || totais["Violão"] != 1 {
		t.Fatalf("totais inesperados: %v", totais)
	}
}

func TestService_Relatorio_FiltraPorTitulo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	leilao, _ := svc.CreateLeilao(ctx, agora, agora.Add(time.Hour))
	svc.CreateItem(ctx, leilao.ID, "Barril antigo", "", 50)
	svc.CreateItem(ctx, leilao.ID, "Violão", "", 30)

	linhas, err := svc.Relatorio(ctx, leilao.ID, "barril")
	if err != nil {
		t.Fatalf("Relatorio: %v", err)
	}
	if len(linhas) != 1 || linhas[0].Titulo != "Barril antigo" {
		t.Fatalf("linhas = %+v", linhas)
	}
}

func TestService_Relatorio_LeilaoInexistente(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Relatorio(context.Background(), "leilao-fantasma", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("esperava ErrNotFound, got %v", err)
	}
}
