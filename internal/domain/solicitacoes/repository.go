package solicitacoes

import "context"

// Filtro de listagem. Campos zero são no-ops.
type Filtro struct {
	AdotanteID string
	Status     Status
}

type Repository interface {
	Create(ctx context.Context, s Solicitacao) error
	Update(ctx context.Context, s Solicitacao) error
	GetByID(ctx context.Context, id string) (Solicitacao, error)
	// List ordena por CriadaEm desc (mais recentes primeiro).
	List(ctx context.Context, f Filtro) ([]Solicitacao, error)

	CreateAvaliacao(ctx context.Context, a Avaliacao) error
	// ListAvaliacoes ordena por AvaliadaEm desc.
	ListAvaliacoes(ctx context.Context, solicitacaoID string) ([]Avaliacao, error)

	CreateDocumento(ctx context.Context, d Documento) error
	// ListDocumentos ordena por EnviadoEm desc.
	ListDocumentos(ctx context.Context, solicitacaoID string) ([]Documento, error)
}
