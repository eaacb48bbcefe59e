package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/leilao"
)

type leilaoRepo struct {
	db *DB
}

func NewLeilaoRepo(db *DB) leilao.Repository {
	return &leilaoRepo{db: db}
}

func (r *leilaoRepo) CreateParticipante(ctx context.Context, p leilao.Participante) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("participante id required")
	}
	if _, exists := r.db.participantes[p.ID]; exists {
		return errors.New("participante already exists")
	}
	r.db.participantes[p.ID] = p
	return nil
}

func (r *leilaoRepo) GetParticipante(ctx context.Context, id string) (leilao.Participante, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	p, ok := r.db.participantes[id]
	if !ok {
		return leilao.Participante{}, leilao.ErrNotFound
	}
	return p, nil
}

func (r *leilaoRepo) CreateLeilao(ctx context.Context, l leilao.Leilao) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(l.ID) == "" {
		return errors.New("leilao id required")
	}
	if _, exists := r.db.leiloes[l.ID]; exists {
		return errors.New("leilao already exists")
	}
	r.db.leiloes[l.ID] = l
	return nil
}

func (r *leilaoRepo) GetLeilao(ctx context.Context, id string) (leilao.Leilao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	l, ok := r.db.leiloes[id]
	if !ok {
		return leilao.Leilao{}, leilao.ErrNotFound
	}
	return l, nil
}

func (r *leilaoRepo) ListLeiloes(ctx context.Context) ([]leilao.Leilao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]leilao.Leilao, 0, len(r.db.leiloes))
	for _, l := range r.db.leiloes {
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Inicio.Before(out[j].Inicio) })
	return out, nil
}

func (r *leilaoRepo) CreateItem(ctx context.Context, i leilao.ItemLeilao) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(i.ID) == "" {
		return errors.New("item id required")
	}
	if _, exists := r.db.itens[i.ID]; exists {
		return errors.New("item already exists")
	}
	r.db.itens[i.ID] = i
	return nil
}

func (r *leilaoRepo) GetItem(ctx context.Context, id string) (leilao.ItemLeilao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i, ok := r.db.itens[id]
	if !ok {
		return leilao.ItemLeilao{}, leilao.ErrNotFound
	}
	return i, nil
}

func (r *leilaoRepo) ListItens(ctx context.Context, leilaoID, titulo string) ([]leilao.ItemLeilao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	titulo = strings.ToLower(titulo)
	out := make([]leilao.ItemLeilao, 0)
	for _, i := range r.db.itens {
		if i.LeilaoID != leilaoID {
			continue
		}
		if titulo != "" && !strings.Contains(strings.ToLower(i.Titulo), titulo) {
			continue
		}
		out = append(out, i)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Titulo < out[j].Titulo })
	return out, nil
}

func (r *leilaoRepo) CreateLance(ctx context.Context, l leilao.Lance) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.itens[l.ItemID]; !exists {
		return leilao.ErrNotFound
	}
	r.db.lances[l.ItemID] = append(r.db.lances[l.ItemID], l)
	return nil
}

func (r *leilaoRepo) CountLances(ctx context.Context, itemID string) (int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return len(r.db.lances[itemID]), nil
}
