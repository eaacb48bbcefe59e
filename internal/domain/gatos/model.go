package gatos

import (
	"time"
	"unicode/utf8"

	"adocato/internal/domain/validacao"
)

// Sexo do gato.
// @Enum M, F
type Sexo string

const (
	SexoMacho Sexo = "M"
	SexoFemea Sexo = "F"
)

// Gato é o registro de um animal adotável do catálogo.
type Gato struct {
	ID     string
	RacaID string

	Nome      string
	Sexo      Sexo
	Cor       string
	Descricao string
	Foto      string

	DataNascimento *time.Time
	Disponivel     bool

	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// Validar aplica as regras de cadastro; hoje é a data de referência
// (injetada pelo service para manter o modelo determinístico).
func (g Gato) Validar(hoje time.Time) validacao.Erros {
	erros := validacao.Novo()

	if utf8.RuneCountInString(g.Nome) < 5 {
		erros.Add("nome", "O nome do gato deve ter pelo menos 5 caracteres.")
	}
	if g.Cor == "" {
		erros.Add("cor", "A cor do gato é obrigatória.")
	}
	if g.Sexo != SexoMacho && g.Sexo != SexoFemea {
		erros.Add("sexo", `O sexo deve ser "M" para macho ou "F" para fêmea.`)
	}
	if g.DataNascimento == nil {
		erros.Add("data_nascimento", "A data de nascimento é obrigatória.")
	} else if aposODia(*g.DataNascimento, hoje) {
		erros.Add("data_nascimento", "A data de nascimento não pode ser no futuro.")
	}

	return erros
}

// Idade em anos completos na data de referência; 0 sem data de nascimento.
func (g Gato) Idade(ref time.Time) int {
	if g.DataNascimento == nil {
		return 0
	}
	return idadeEm(*g.DataNascimento, ref)
}

func idadeEm(nascimento, ref time.Time) int {
	idade := ref.Year() - nascimento.Year()
	if ref.Month() < nascimento.Month() ||
		(ref.Month() == nascimento.Month() && ref.Day() < nascimento.Day()) {
		idade--
	}
	return idade
}

// aposODia compara só a parte de data (ano, mês, dia), ignorando hora e fuso.
func aposODia(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	if ty != ry {
		return ty > ry
	}
	if tm != rm {
		return tm > rm
	}
	return td > rd
}
