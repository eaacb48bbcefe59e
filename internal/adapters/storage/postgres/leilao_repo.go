package postgres

import (
	"context"
	"database/sql"
	"strings"

	"adocato/internal/domain/leilao"
)

type LeilaoRepo struct {
	db *sql.DB
}

func NewLeilaoRepo(db *sql.DB) *LeilaoRepo {
	return &LeilaoRepo{db: db}
}

func (r *LeilaoRepo) CreateParticipante(ctx context.Context, p leilao.Participante) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO participantes (id, nome, email, endereco)
		VALUES ($1,$2,$3,$4)
	`,
		p.ID,
		p.Nome,
		p.Email,
		p.Endereco,
	)
	return err
}

func (r *LeilaoRepo) GetParticipante(ctx context.Context, id string) (leilao.Participante, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome, email, endereco
		FROM participantes
		WHERE id = $1
	`, strings.TrimSpace(id))

	var p leilao.Participante
	if err := row.Scan(&p.ID, &p.Nome, &p.Email, &p.Endereco); err != nil {
		if err == sql.ErrNoRows {
			return leilao.Participante{}, leilao.ErrNotFound
		}
		return leilao.Participante{}, err
	}
	return p, nil
}

func (r *LeilaoRepo) CreateLeilao(ctx context.Context, l leilao.Leilao) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leiloes (id, inicio, termino)
		VALUES ($1,$2,$3)
	`,
		l.ID,
		l.Inicio,
		l.Termino,
	)
	return err
}

func (r *LeilaoRepo) GetLeilao(ctx context.Context, id string) (leilao.Leilao, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, inicio, termino
		FROM leiloes
		WHERE id = $1
	`, strings.TrimSpace(id))

	var l leilao.Leilao
	if err := row.Scan(&l.ID, &l.Inicio, &l.Termino); err != nil {
		if err == sql.ErrNoRows {
			return leilao.Leilao{}, leilao.ErrNotFound
		}
		return leilao.Leilao{}, err
	}
	return l, nil
}

func (r *LeilaoRepo) ListLeiloes(ctx context.Context) ([]leilao.Leilao, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, inicio, termino
		FROM leiloes
		ORDER BY inicio ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]leilao.Leilao, 0)
	for rows.Next() {
		var l leilao.Leilao
		if err := rows.Scan(&l.ID, &l.Inicio, &l.Termino); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeilaoRepo) CreateItem(ctx context.Context, i leilao.ItemLeilao) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO itens_leilao (id, leilao_id, titulo, descricao, lance_minimo, arrematado)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		i.ID,
		i.LeilaoID,
		i.Titulo,
		i.Descricao,
		i.LanceMinimo,
		i.Arrematado,
	)
	return err
}

func (r *LeilaoRepo) GetItem(ctx context.Context, id string) (leilao.ItemLeilao, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, leilao_id, titulo, descricao, lance_minimo, arrematado
		FROM itens_leilao
		WHERE id = $1
	`, strings.TrimSpace(id))

	var i leilao.ItemLeilao
	if err := row.Scan(&i.ID, &i.LeilaoID, &i.Titulo, &i.Descricao, &i.LanceMinimo, &i.Arrematado); err != nil {
		if err == sql.ErrNoRows {
			return leilao.ItemLeilao{}, leilao.ErrNotFound
		}
		return leilao.ItemLeilao{}, err
	}
	return i, nil
}

func (r *LeilaoRepo) ListItens(ctx context.Context, leilaoID, titulo string) ([]leilao.ItemLeilao, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, leilao_id, titulo, descricao, lance_minimo, arrematado
		FROM itens_leilao
		WHERE leilao_id = $1
		  AND ($2 = '' OR titulo ILIKE '%' || $2 || '%')
		ORDER BY titulo ASC
	`, leilaoID, titulo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]leilao.ItemLeilao, 0)
	for rows.Next() {
		var i leilao.ItemLeilao
		if err := rows.Scan(&i.ID, &i.LeilaoID, &i.Titulo, &i.Descricao, &i.LanceMinimo, &i.Arrematado); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *LeilaoRepo) CreateLance(ctx context.Context, l leilao.Lance) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO lances (id, item_id, participante_id, valor, hora_lance)
		VALUES ($1,$2,$3,$4,$5)
	`,
		l.ID,
		l.ItemID,
		l.ParticipanteID,
		l.Valor,
		l.HoraLance,
	)
	return err
}

func (r *LeilaoRepo) CountLances(ctx context.Context, itemID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM lances WHERE item_id = $1
	`, itemID).Scan(&n)
	return n, err
}
