package racas

import (
	"time"
	"unicode/utf8"

	"adocato/internal/domain/validacao"
)

// Raca agrupa gatos por raça. O nome é único no catálogo.
type Raca struct {
	ID   string
	Nome string

	CriadaEm     time.Time
	AtualizadaEm time.Time
}

func (r Raca) Validar() validacao.Erros {
	erros := validacao.Novo()
	if utf8.RuneCountInString(r.Nome) < 3 {
		erros.Add("nome", "O nome da raça deve ter pelo menos 3 caracteres.")
	}
	return erros
}
