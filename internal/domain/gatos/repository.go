package gatos

import "context"

// Filtro de busca do catálogo. Campos zero são no-ops:
// Nome vazio não filtra, Disponivel nil não filtra.
type Filtro struct {
	Nome       string
	Disponivel *bool
}

type Repository interface {
	Create(ctx context.Context, g Gato) error
	Update(ctx context.Context, g Gato) error
	// Delete devolve ErrNotFound quando o id não existe e ErrVinculado
	// quando alguma solicitação referencia o gato (restrição de integridade).
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Gato, error)
	// Search aplica o Filtro; resultado sempre ordenado por nome asc.
	Search(ctx context.Context, f Filtro) ([]Gato, error)
	ListByRaca(ctx context.Context, racaID string) ([]Gato, error)
}
