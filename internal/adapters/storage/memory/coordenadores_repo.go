package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/coordenadores"
)

type coordenadorRepo struct {
	db *DB
}

func NewCoordenadorRepo(db *DB) coordenadores.Repository {
	return &coordenadorRepo{db: db}
}

func (r *coordenadorRepo) Create(ctx context.Context, c coordenadores.Coordenador) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("coordenador id required")
	}
	if _, exists := r.db.coordenadores[c.ID]; exists {
		return errors.New("coordenador already exists")
	}
	r.db.coordenadores[c.ID] = c
	return nil
}

func (r *coordenadorRepo) GetByID(ctx context.Context, id string) (coordenadores.Coordenador, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	c, ok := r.db.coordenadores[id]
	if !ok {
		return coordenadores.Coordenador{}, coordenadores.ErrNotFound
	}
	return c, nil
}

func (r *coordenadorRepo) GetByCPF(ctx context.Context, cpf string) (coordenadores.Coordenador, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.coordenadores {
		if c.CPF == cpf {
			return c, nil
		}
	}
	return coordenadores.Coordenador{}, coordenadores.ErrNotFound
}

func (r *coordenadorRepo) GetByApelido(ctx context.Context, apelido string) (coordenadores.Coordenador, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.coordenadores {
		if strings.EqualFold(c.Apelido, apelido) {
			return c, nil
		}
	}
	return coordenadores.Coordenador{}, coordenadores.ErrNotFound
}

func (r *coordenadorRepo) List(ctx context.Context) ([]coordenadores.Coordenador, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]coordenadores.Coordenador, 0, len(r.db.coordenadores))
	for _, c := range r.db.coordenadores {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}
