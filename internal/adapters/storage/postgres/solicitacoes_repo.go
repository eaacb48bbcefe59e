package postgres

import (
	"context"
	"database/sql"
	"strings"

	"adocato/internal/domain/solicitacoes"
)

type SolicitacoesRepo struct {
	db *sql.DB
}

func NewSolicitacoesRepo(db *sql.DB) *SolicitacoesRepo {
	return &SolicitacoesRepo{db: db}
}

func (r *SolicitacoesRepo) Create(ctx context.Context, s solicitacoes.Solicitacao) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO solicitacoes (id, adotante_id, gato_id, recurso, status, criada_em)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		s.ID,
		s.AdotanteID,
		s.GatoID,
		s.Recurso,
		string(s.Status),
		s.CriadaEm,
	)
	return err
}

func (r *SolicitacoesRepo) Update(ctx context.Context, s solicitacoes.Solicitacao) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE solicitacoes
		SET recurso = $2, status = $3
		WHERE id = $1
	`,
		s.ID,
		s.Recurso,
		string(s.Status),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return solicitacoes.ErrNotFound
	}
	return nil
}

func (r *SolicitacoesRepo) GetByID(ctx context.Context, id string) (solicitacoes.Solicitacao, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return solicitacoes.Solicitacao{}, solicitacoes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, adotante_id, gato_id, recurso, status, criada_em
		FROM solicitacoes
		WHERE id = $1
	`, id)

	var s solicitacoes.Solicitacao
	var status string
	if err := row.Scan(&s.ID, &s.AdotanteID, &s.GatoID, &s.Recurso, &status, &s.CriadaEm); err != nil {
		if err == sql.ErrNoRows {
			return solicitacoes.Solicitacao{}, solicitacoes.ErrNotFound
		}
		return solicitacoes.Solicitacao{}, err
	}
	s.Status = solicitacoes.Status(status)
	return s, nil
}

func (r *SolicitacoesRepo) List(ctx context.Context, f solicitacoes.Filtro) ([]solicitacoes.Solicitacao, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, adotante_id, gato_id, recurso, status, criada_em
		FROM solicitacoes
		WHERE ($1 = '' OR adotante_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY criada_em DESC
	`, f.AdotanteID, string(f.Status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]solicitacoes.Solicitacao, 0)
	for rows.Next() {
		var s solicitacoes.Solicitacao
		var status string
		if err := rows.Scan(&s.ID, &s.AdotanteID, &s.GatoID, &s.Recurso, &status, &s.CriadaEm); err != nil {
			return nil, err
		}
		s.Status = solicitacoes.Status(status)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SolicitacoesRepo) CreateAvaliacao(ctx context.Context, a solicitacoes.Avaliacao) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO avaliacoes (id, solicitacao_id, coordenador_id, parecer, avaliada_em)
		VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		a.SolicitacaoID,
		a.CoordenadorID,
		a.Parecer,
		a.AvaliadaEm,
	)
	return err
}

func (r *SolicitacoesRepo) ListAvaliacoes(ctx context.Context, solicitacaoID string) ([]solicitacoes.Avaliacao, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, solicitacao_id, coordenador_id, parecer, avaliada_em
		FROM avaliacoes
		WHERE solicitacao_id = $1
		ORDER BY avaliada_em DESC
	`, solicitacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]solicitacoes.Avaliacao, 0)
	for rows.Next() {
		var a solicitacoes.Avaliacao
		if err := rows.Scan(&a.ID, &a.SolicitacaoID, &a.CoordenadorID, &a.Parecer, &a.AvaliadaEm); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *SolicitacoesRepo) CreateDocumento(ctx context.Context, d solicitacoes.Documento) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO documentos (id, solicitacao_id, arquivo, descricao, enviado_em)
		VALUES ($1,$2,$3,$4,$5)
	`,
		d.ID,
		d.SolicitacaoID,
		d.Arquivo,
		d.Descricao,
		d.EnviadoEm,
	)
	return err
}

func (r *SolicitacoesRepo) ListDocumentos(ctx context.Context, solicitacaoID string) ([]solicitacoes.Documento, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, solicitacao_id, arquivo, descricao, enviado_em
		FROM documentos
		WHERE solicitacao_id = $1
		ORDER BY enviado_em DESC
	`, solicitacaoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]solicitacoes.Documento, 0)
	for rows.Next() {
		var d solicitacoes.Documento
		if err := rows.Scan(&d.ID, &d.SolicitacaoID, &d.Arquivo, &d.Descricao, &d.EnviadoEm); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
