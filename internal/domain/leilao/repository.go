package leilao

import "context"

type Repository interface {
	CreateParticipante(ctx context.Context, p Participante) error
	GetParticipante(ctx context.Context, id string) (Participante, error)

	CreateLeilao(ctx context.Context, l Leilao) error
	GetLeilao(ctx context.Context, id string) (Leilao, error)
	// ListLeiloes ordena por Inicio asc.
	ListLeiloes(ctx context.Context) ([]Leilao, error)

	CreateItem(ctx context.Context, i ItemLeilao) error
	GetItem(ctx context.Context, id string) (ItemLeilao, error)
	// ListItens filtra por substring do título (case-insensitive) quando
	// informada, ordenado por título asc.
	ListItens(ctx context.Context, leilaoID, titulo string) ([]ItemLeilao, error)

	CreateLance(ctx context.Context, l Lance) error
	CountLances(ctx context.Context, itemID string) (int, error)
}
