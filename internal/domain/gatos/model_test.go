package gatos

import (
	"testing"
	"time"
)

func dataPtr(ano int, mes time.Month, dia int) *time.Time {
	t := time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	return &t
}

func gatoValido() Gato {
	return Gato{
		ID:             "gato-1",
		RacaID:         "raca-1",
		Nome:           "Mimimi",
		Sexo:           SexoFemea,
		Cor:            "preta",
		DataNascimento: dataPtr(2020, time.March, 10),
		Disponivel:     true,
	}
}

var hoje = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestGato_ValidarOK(t *testing.T) {
	if erros := gatoValido().Validar(hoje); !erros.Vazio() {
		t.Fatalf("esperava gato válido, got %v", erros)
	}
}

func TestGato_ValidarCampos(t *testing.T) {
	cases := []struct {
		nome  string
		mutar func(*Gato)
		campo string
		msg   string
	}{
		{
			"nome com 4 caracteres",
			func(g *Gato) { g.Nome = "Mimi" },
			"nome",
			"O nome do gato deve ter pelo menos 5 caracteres.",
		},
		{
			"cor vazia",
			func(g *Gato) { g.Cor = "" },
			"cor",
			"A cor do gato é obrigatória.",
		},
		{
			"sexo inválido",
			func(g *Gato) { g.Sexo = "X" },
			"sexo",
			`O sexo deve ser "M" para macho ou "F" para fêmea.`,
		},
		{
			"sem data de nascimento",
			func(g *Gato) { g.DataNascimento = nil },
			"data_nascimento",
			"A data de nascimento é obrigatória.",
		},
		{
			"data de nascimento futura",
			func(g *Gato) { g.DataNascimento = dataPtr(2025, time.June, 16) },
			"data_nascimento",
			"A data de nascimento não pode ser no futuro.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			g := gatoValido()
			tc.mutar(&g)

			erros := g.Validar(hoje)
			if len(erros[tc.campo]) == 0 {
				t.Fatalf("esperava erro em %q, got %v", tc.campo, erros)
			}
			if erros[tc.campo][0] != tc.msg {
				t.Fatalf("mensagem = %q, want %q", erros[tc.campo][0], tc.msg)
			}
		})
	}
}

func TestGato_ValidarNascimentoHojeNaoEFuturo(t *testing.T) {
	g := gatoValido()
	// Nascido hoje, mas num horário "depois" do relógio de referência:
	// só a data conta, não a hora.
	nascimento := time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC)
	g.DataNascimento = &nascimento

	if erros := g.Validar(hoje); !erros.Vazio() {
		t.Fatalf("nascimento hoje não é futuro, got %v", erros)
	}
}

func TestGato_IdadeExata(t *testing.T) {
	g := gatoValido()

	g.DataNascimento = dataPtr(2007, time.June, 15)
	if got := g.Idade(hoje); got != 18 {
		t.Fatalf("aniversário hoje: idade = %d, want 18", got)
	}

	g.DataNascimento = dataPtr(2007, time.June, 16)
	if got := g.Idade(hoje); got != 17 {
		t.Fatalf("aniversário amanhã: idade = %d, want 17", got)
	}

	g.DataNascimento = nil
	if got := g.Idade(hoje); got != 0 {
		t.Fatalf("sem nascimento: idade = %d, want 0", got)
	}
}
