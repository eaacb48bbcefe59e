package racas

import "context"

type Repository interface {
	Create(ctx context.Context, r Raca) error
	Update(ctx context.Context, r Raca) error
	GetByID(ctx context.Context, id string) (Raca, error)
	GetByNome(ctx context.Context, nome string) (Raca, error)
	// List filtra por substring do nome (case-insensitive) quando informada,
	// ordenado por nome asc.
	List(ctx context.Context, nome string) ([]Raca, error)
}
