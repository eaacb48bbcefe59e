package postgres

import (
	"context"
	"database/sql"
	"strings"

	"adocato/internal/domain/coordenadores"
)

type CoordenadoresRepo struct {
	db *sql.DB
}

func NewCoordenadoresRepo(db *sql.DB) *CoordenadoresRepo {
	return &CoordenadoresRepo{db: db}
}

func (r *CoordenadoresRepo) Create(ctx context.Context, c coordenadores.Coordenador) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO coordenadores (
			id, username, senha, nome, cpf, apelido,
			criado_em, atualizado_em
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.Username,
		c.Senha,
		c.Nome,
		c.CPF,
		c.Apelido,
		c.CriadoEm,
		c.AtualizadoEm,
	)
	return err
}

func (r *CoordenadoresRepo) GetByID(ctx context.Context, id string) (coordenadores.Coordenador, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return coordenadores.Coordenador{}, coordenadores.ErrNotFound
	}
	return r.getWhere(ctx, "id = $1", id)
}

func (r *CoordenadoresRepo) GetByCPF(ctx context.Context, cpf string) (coordenadores.Coordenador, error) {
	return r.getWhere(ctx, "cpf = $1", cpf)
}

func (r *CoordenadoresRepo) GetByApelido(ctx context.Context, apelido string) (coordenadores.Coordenador, error) {
	return r.getWhere(ctx, "LOWER(apelido) = LOWER($1)", apelido)
}

func (r *CoordenadoresRepo) List(ctx context.Context) ([]coordenadores.Coordenador, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, username, senha, nome, cpf, apelido,
			criado_em, atualizado_em
		FROM coordenadores
		ORDER BY nome ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]coordenadores.Coordenador, 0)
	for rows.Next() {
		var c coordenadores.Coordenador
		if err := rows.Scan(
			&c.ID,
			&c.Username,
			&c.Senha,
			&c.Nome,
			&c.CPF,
			&c.Apelido,
			&c.CriadoEm,
			&c.AtualizadoEm,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CoordenadoresRepo) getWhere(ctx context.Context, cond, arg string) (coordenadores.Coordenador, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, username, senha, nome, cpf, apelido,
			criado_em, atualizado_em
		FROM coordenadores
		WHERE `+cond, arg)

	var c coordenadores.Coordenador
	if err := row.Scan(
		&c.ID,
		&c.Username,
		&c.Senha,
		&c.Nome,
		&c.CPF,
		&c.Apelido,
		&c.CriadoEm,
		&c.AtualizadoEm,
	); err != nil {
		if err == sql.ErrNoRows {
			return coordenadores.Coordenador{}, coordenadores.ErrNotFound
		}
		return coordenadores.Coordenador{}, err
	}
	return c, nil
}
