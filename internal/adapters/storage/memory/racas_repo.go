package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/racas"
)

type racaRepo struct {
	db *DB
}

func NewRacaRepo(db *DB) racas.Repository {
	return &racaRepo{db: db}
}

func (r *racaRepo) Create(ctx context.Context, raca racas.Raca) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(raca.ID) == "" {
		return errors.New("raca id required")
	}
	if _, exists := r.db.racas[raca.ID]; exists {
		return errors.New("raca already exists")
	}
	r.db.racas[raca.ID] = raca
	return nil
}

func (r *racaRepo) Update(ctx context.Context, raca racas.Raca) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.racas[raca.ID]; !exists {
		return racas.ErrNotFound
	}
	r.db.racas[raca.ID] = raca
	return nil
}

func (r *racaRepo) GetByID(ctx context.Context, id string) (racas.Raca, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	raca, ok := r.db.racas[id]
	if !ok {
		return racas.Raca{}, racas.ErrNotFound
	}
	return raca, nil
}

func (r *racaRepo) GetByNome(ctx context.Context, nome string) (racas.Raca, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, raca := range r.db.racas {
		if strings.EqualFold(raca.Nome, nome) {
			return raca, nil
		}
	}
	return racas.Raca{}, racas.ErrNotFound
}

func (r *racaRepo) List(ctx context.Context, nome string) ([]racas.Raca, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	nome = strings.ToLower(nome)
	out := make([]racas.Raca, 0, len(r.db.racas))
	for _, raca := range r.db.racas {
		if nome != "" && !strings.Contains(strings.ToLower(raca.Nome), nome) {
			continue
		}
		out = append(out, raca)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}
