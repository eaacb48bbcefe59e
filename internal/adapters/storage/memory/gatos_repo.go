package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/gatos"
)

type gatoRepo struct {
	db *DB
}

func NewGatoRepo(db *DB) gatos.Repository {
	return &gatoRepo{db: db}
}

func (r *gatoRepo) Create(ctx context.Context, g gatos.Gato) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("gato id required")
	}
	if _, exists := r.db.gatos[g.ID]; exists {
		return errors.New("gato already exists")
	}
	r.db.gatos[g.ID] = g
	return nil
}

func (r *gatoRepo) Update(ctx context.Context, g gatos.Gato) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.gatos[g.ID]; !exists {
		return gatos.ErrNotFound
	}
	r.db.gatos[g.ID] = g
	return nil
}

// Delete respeita a restrição de integridade: um gato referenciado por
// qualquer solicitação não pode ser excluído.
func (r *gatoRepo) Delete(ctx context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.gatos[id]; !exists {
		return gatos.ErrNotFound
	}
	for _, sol := range r.db.solicitacoes {
		if sol.GatoID == id {
			return gatos.ErrVinculado
		}
	}
	delete(r.db.gatos, id)
	return nil
}

func (r *gatoRepo) GetByID(ctx context.Context, id string) (gatos.Gato, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	g, ok := r.db.gatos[id]
	if !ok {
		return gatos.Gato{}, gatos.ErrNotFound
	}
	return g, nil
}

func (r *gatoRepo) Search(ctx context.Context, f gatos.Filtro) ([]gatos.Gato, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	nome := strings.ToLower(f.Nome)
	out := make([]gatos.Gato, 0)
	for _, g := range r.db.gatos {
		if nome != "" && !strings.Contains(strings.ToLower(g.Nome), nome) {
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

func (r *gatoRepo) ListByRaca(ctx context.Context, racaID string) ([]gatos.Gato, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]gatos.Gato, 0)
	for _, g := range r.db.gatos {
		if g.RacaID == racaID {
			out = append(out, g)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}
