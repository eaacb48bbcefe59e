package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"adocato/internal/domain/gatos"
)

// Código SQLSTATE de violação de chave estrangeira.
const fkViolation = "23503"

type GatosRepo struct {
	db *sql.DB
}

func NewGatosRepo(db *sql.DB) *GatosRepo {
	return &GatosRepo{db: db}
}

func (r *GatosRepo) Create(ctx context.Context, g gatos.Gato) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO gatos (
			id, raca_id,
			nome, sexo, cor, descricao, foto,
			data_nascimento, disponivel,
			criado_em, atualizado_em
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		g.ID,
		g.RacaID,
		g.Nome,
		string(g.Sexo),
		g.Cor,
		g.Descricao,
		g.Foto,
		toNullDate(g.DataNascimento),
		g.Disponivel,
		g.CriadoEm,
		g.AtualizadoEm,
	)
	return err
}

func (r *GatosRepo) Update(ctx context.Context, g gatos.Gato) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE gatos
		SET
			raca_id = $2,
			nome = $3,
			sexo = $4,
			cor = $5,
			descricao = $6,
			foto = $7,
			data_nascimento = $8,
			disponivel = $9,
			atualizado_em = $10
		WHERE id = $1
	`,
		g.ID,
		g.RacaID,
		g.Nome,
		string(g.Sexo),
		g.Cor,
		g.Descricao,
		g.Foto,
		toNullDate(g.DataNascimento),
		g.Disponivel,
		g.AtualizadoEm,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return gatos.ErrNotFound
	}
	return nil
}

// Delete traduz a violação de FK (solicitação apontando para o gato)
// para o erro de domínio, mantendo a exclusão restrita.
func (r *GatosRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gatos WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return gatos.ErrVinculado
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return gatos.ErrNotFound
	}
	return nil
}

func (r *GatosRepo) GetByID(ctx context.Context, id string) (gatos.Gato, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return gatos.Gato{}, gatos.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, raca_id,
			nome, sexo, cor, descricao, foto,
			data_nascimento, disponivel,
			criado_em, atualizado_em
		FROM gatos
		WHERE id = $1
	`, id)

	g, err := scanGato(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return gatos.Gato{}, gatos.ErrNotFound
		}
		return gatos.Gato{}, err
	}
	return g, nil
}

func (r *GatosRepo) Search(ctx context.Context, f gatos.Filtro) ([]gatos.Gato, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, raca_id,
			nome, sexo, cor, descricao, foto,
			data_nascimento, disponivel,
			criado_em, atualizado_em
		FROM gatos
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR disponivel = $2::boolean)
		ORDER BY nome ASC
	`, f.Nome, f.Disponivel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGatos(rows)
}

func (r *GatosRepo) ListByRaca(ctx context.Context, racaID string) ([]gatos.Gato, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, raca_id,
			nome, sexo, cor, descricao, foto,
			data_nascimento, disponivel,
			criado_em, atualizado_em
		FROM gatos
		WHERE raca_id = $1
		ORDER BY nome ASC
	`, racaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectGatos(rows)
}

func collectGatos(rows *sql.Rows) ([]gatos.Gato, error) {
	out := make([]gatos.Gato, 0)
	for rows.Next() {
		g, err := scanGato(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func scanGato(scan func(...any) error) (gatos.Gato, error) {
	var g gatos.Gato
	var sexo string
	var nascimento sql.NullTime
	if err := scan(
		&g.ID,
		&g.RacaID,
		&g.Nome,
		&sexo,
		&g.Cor,
		&g.Descricao,
		&g.Foto,
		&nascimento,
		&g.Disponivel,
		&g.CriadoEm,
		&g.AtualizadoEm,
	); err != nil {
		return gatos.Gato{}, err
	}
	g.Sexo = gatos.Sexo(sexo)
	g.DataNascimento = fromNullDate(nascimento)
	return g, nil
}
