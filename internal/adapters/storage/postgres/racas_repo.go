package postgres

import (
	"context"
	"database/sql"
	"strings"

	"adocato/internal/domain/racas"
)

type RacasRepo struct {
	db *sql.DB
}

func NewRacasRepo(db *sql.DB) *RacasRepo {
	return &RacasRepo{db: db}
}

func (r *RacasRepo) Create(ctx context.Context, raca racas.Raca) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO racas (id, nome, criada_em, atualizada_em)
		VALUES ($1, $2, $3, $4)
	`,
		raca.ID,
		raca.Nome,
		raca.CriadaEm,
		raca.AtualizadaEm,
	)
	return err
}

func (r *RacasRepo) Update(ctx context.Context, raca racas.Raca) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE racas
		SET nome = $2, atualizada_em = $3
		WHERE id = $1
	`,
		raca.ID,
		raca.Nome,
		raca.AtualizadaEm,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return racas.ErrNotFound
	}
	return nil
}

func (r *RacasRepo) GetByID(ctx context.Context, id string) (racas.Raca, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return racas.Raca{}, racas.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, criada_em, atualizada_em
		FROM racas
		WHERE id = $1
	`, id)
	return scanRaca(row)
}

func (r *RacasRepo) GetByNome(ctx context.Context, nome string) (racas.Raca, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, criada_em, atualizada_em
		FROM racas
		WHERE LOWER(nome) = LOWER($1)
	`, nome)
	return scanRaca(row)
}

func (r *RacasRepo) List(ctx context.Context, nome string) ([]racas.Raca, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome, criada_em, atualizada_em
		FROM racas
		WHERE $1 = '' OR nome ILIKE '%' || $1 || '%'
		ORDER BY nome ASC
	`, nome)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]racas.Raca, 0)
	for rows.Next() {
		var raca racas.Raca
		if err := rows.Scan(&raca.ID, &raca.Nome, &raca.CriadaEm, &raca.AtualizadaEm); err != nil {
			return nil, err
		}
		out = append(out, raca)
	}
	return out, rows.Err()
}

func scanRaca(row *sql.Row) (racas.Raca, error) {
	var raca racas.Raca
	if err := row.Scan(&raca.ID, &raca.Nome, &raca.CriadaEm, &raca.AtualizadaEm); err != nil {
		if err == sql.ErrNoRows {
			return racas.Raca{}, racas.ErrNotFound
		}
		return racas.Raca{}, err
	}
	return raca, nil
}
