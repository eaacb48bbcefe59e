package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"adocato/internal/domain/solicitacoes"
)

type solicitacaoRepo struct {
	db *DB
}

func NewSolicitacaoRepo(db *DB) solicitacoes.Repository {
	return &solicitacaoRepo{db: db}
}

func (r *solicitacaoRepo) Create(ctx context.Context, s solicitacoes.Solicitacao) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("solicitacao id required")
	}
	if _, exists := r.db.solicitacoes[s.ID]; exists {
		return errors.New("solicitacao already exists")
	}
	r.db.solicitacoes[s.ID] = s
	return nil
}

func (r *solicitacaoRepo) Update(ctx context.Context, s solicitacoes.Solicitacao) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.solicitacoes[s.ID]; !exists {
		return solicitacoes.ErrNotFound
	}
	r.db.solicitacoes[s.ID] = s
	return nil
}

func (r *solicitacaoRepo) GetByID(ctx context.Context, id string) (solicitacoes.Solicitacao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.solicitacoes[id]
	if !ok {
		return solicitacoes.Solicitacao{}, solicitacoes.ErrNotFound
	}
	return s, nil
}

func (r *solicitacaoRepo) List(ctx context.Context, f solicitacoes.Filtro) ([]solicitacoes.Solicitacao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]solicitacoes.Solicitacao, 0)
	for _, s := range r.db.solicitacoes {
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

func (r *solicitacaoRepo) CreateAvaliacao(ctx context.Context, a solicitacoes.Avaliacao) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.solicitacoes[a.SolicitacaoID]; !exists {
		return solicitacoes.ErrNotFound
	}
	r.db.avaliacoes[a.SolicitacaoID] = append(r.db.avaliacoes[a.SolicitacaoID], a)
	return nil
}

func (r *solicitacaoRepo) ListAvaliacoes(ctx context.Context, solicitacaoID string) ([]solicitacoes.Avaliacao, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]solicitacoes.Avaliacao, len(r.db.avaliacoes[solicitacaoID]))
	copy(out, r.db.avaliacoes[solicitacaoID])

	sort.Slice(out, func(i, j int) bool { return out[i].AvaliadaEm.After(out[j].AvaliadaEm) })
	return out, nil
}

func (r *solicitacaoRepo) CreateDocumento(ctx context.Context, d solicitacoes.Documento) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, exists := r.db.solicitacoes[d.SolicitacaoID]; !exists {
		return solicitacoes.ErrNotFound
	}
	r.db.documentos[d.SolicitacaoID] = append(r.db.documentos[d.SolicitacaoID], d)
	return nil
}

func (r *solicitacaoRepo) ListDocumentos(ctx context.Context, solicitacaoID string) ([]solicitacoes.Documento, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]solicitacoes.Documento, len(r.db.documentos[solicitacaoID]))
	copy(out, r.db.documentos[solicitacaoID])

	sort.Slice(out, func(i, j int) bool { return out[i].EnviadoEm.After(out[j].EnviadoEm) })
	return out, nil
}
