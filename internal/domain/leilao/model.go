package leilao

import "time"

// Contexto secundário de relatórios de leilão. Sem regras de validação
// próprias; as operações só exigem as referências existirem.

type Participante struct {
	ID       string
	Nome     string
	Email    string
	Endereco string
}

type Leilao struct {
	ID      string
	Inicio  time.Time
	Termino time.Time
}

type ItemLeilao struct {
	ID       string
	LeilaoID string

	Titulo      string
	Descricao   string
	LanceMinimo float64
	Arrematado  bool
}

// Lance de um participante num item. HoraLance é imutável.
type Lance struct {
	ID             string
	ItemID         string
	ParticipanteID string

	Valor     float64
	HoraLance time.Time
}

// ItemRelatorio é a linha do relatório de um leilão: o item e o total
// de lances recebidos.
type ItemRelatorio struct {
	ItemLeilao
	TotalLances int
}
