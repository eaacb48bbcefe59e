package coordenadores

import "context"

type Repository interface {
	Create(ctx context.Context, c Coordenador) error
	GetByID(ctx context.Context, id string) (Coordenador, error)
	GetByCPF(ctx context.Context, cpf string) (Coordenador, error)
	GetByApelido(ctx context.Context, apelido string) (Coordenador, error)
	List(ctx context.Context) ([]Coordenador, error)
}
