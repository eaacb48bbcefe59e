package postgres

import (
	"context"
	"database/sql"
	"strings"

	"adocato/internal/domain/adotantes"
)

type AdotantesRepo struct {
	db *sql.DB
}

func NewAdotantesRepo(db *sql.DB) *AdotantesRepo {
	return &AdotantesRepo{db: db}
}

func (r *AdotantesRepo) Create(ctx context.Context, a adotantes.Adotante) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adotantes (
			id, username, senha, nome, cpf,
			data_nascimento, telefone, foto,
			criado_em, atualizado_em
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.Username,
		a.Senha,
		a.Nome,
		a.CPF,
		toNullDate(a.DataNascimento),
		a.Telefone,
		a.Foto,
		a.CriadoEm,
		a.AtualizadoEm,
	)
	return err
}

func (r *AdotantesRepo) Update(ctx context.Context, a adotantes.Adotante) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adotantes
		SET
			username = $2,
			senha = $3,
			nome = $4,
			cpf = $5,
			data_nascimento = $6,
			telefone = $7,
			foto = $8,
			atualizado_em = $9
		WHERE id = $1
	`,
		a.ID,
		a.Username,
		a.Senha,
		a.Nome,
		a.CPF,
		toNullDate(a.DataNascimento),
		a.Telefone,
		a.Foto,
		a.AtualizadoEm,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adotantes.ErrNotFound
	}
	return nil
}

func (r *AdotantesRepo) GetByID(ctx context.Context, id string) (adotantes.Adotante, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adotantes.Adotante{}, adotantes.ErrNotFound
	}
	return r.getWhere(ctx, "id = $1", id)
}

func (r *AdotantesRepo) GetByCPF(ctx context.Context, cpf string) (adotantes.Adotante, error) {
	return r.getWhere(ctx, "cpf = $1", cpf)
}

func (r *AdotantesRepo) List(ctx context.Context) ([]adotantes.Adotante, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, username, senha, nome, cpf,
			data_nascimento, telefone, foto,
			criado_em, atualizado_em
		FROM adotantes
		ORDER BY nome ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adotantes.Adotante, 0)
	for rows.Next() {
		a, err := scanAdotante(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdotantesRepo) getWhere(ctx context.Context, cond, arg string) (adotantes.Adotante, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, username, senha, nome, cpf,
			data_nascimento, telefone, foto,
			criado_em, atualizado_em
		FROM adotantes
		WHERE `+cond, arg)

	a, err := scanAdotante(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return adotantes.Adotante{}, adotantes.ErrNotFound
		}
		return adotantes.Adotante{}, err
	}
	return a, nil
}

func scanAdotante(scan func(...any) error) (adotantes.Adotante, error) {
	var a adotantes.Adotante
	var nascimento sql.NullTime
	if err := scan(
		&a.ID,
		&a.Username,
		&a.Senha,
		&a.Nome,
		&a.CPF,
		&nascimento,
		&a.Telefone,
		&a.Foto,
		&a.CriadoEm,
		&a.AtualizadoEm,
	); err != nil {
		return adotantes.Adotante{}, err
	}
	a.DataNascimento = fromNullDate(nascimento)
	return a, nil
}
