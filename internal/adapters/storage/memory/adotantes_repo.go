package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/adotantes"
)

type adotanteRepo struct {
	db *DB
}

func NewAdotanteRepo(db *DB) adotantes.Repository {
	return &adotanteRepo{db: db}
}

func (r *adotanteRepo) Create(ctx context.Context, a adotantes.Adotante) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("adotante id required")
	}
	if _, exists := r.db.adotantes[a.ID]; exists {
		return errors.New("adotante already exists")
	}
	r.db.adotantes[a.ID] = a
	return nil
}

func (r *adotanteRepo) Update(ctx context.Context, a adotantes.Adotante) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.adotantes[a.ID]; !exists {
		return adotantes.ErrNotFound
	}
	r.db.adotantes[a.ID] = a
	return nil
}

func (r *adotanteRepo) GetByID(ctx context.Context, id string) (adotantes.Adotante, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	a, ok := r.db.adotantes[id]
	if !ok {
		return adotantes.Adotante{}, adotantes.ErrNotFound
	}
	return a, nil
}

func (r *adotanteRepo) GetByCPF(ctx context.Context, cpf string) (adotantes.Adotante, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, a := range r.db.adotantes {
		if a.CPF == cpf {
			return a, nil
		}
	}
	return adotantes.Adotante{}, adotantes.ErrNotFound
}

func (r *adotanteRepo) List(ctx context.Context) ([]adotantes.Adotante, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]adotantes.Adotante, 0, len(r.db.adotantes))
	for _, a := range r.db.adotantes {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}
