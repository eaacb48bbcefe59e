package adotantes

import "context"

type Repository interface {
	Create(ctx context.Context, a Adotante) error
	Update(ctx context.Context, a Adotante) error
	GetByID(ctx context.Context, id string) (Adotante, error)
	GetByCPF(ctx context.Context, cpf string) (Adotante, error)
	List(ctx context.Context) ([]Adotante, error)
}
