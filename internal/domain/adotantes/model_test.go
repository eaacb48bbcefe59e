package adotantes

import (
	"testing"
	"time"

	"adocato/internal/domain/usuarios"
)

var hoje = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func dataPtr(ano int, mes time.Month, dia int) *time.Time {
	t := time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	return &t
}

func adotanteValido() Adotante {
	return Adotante{
		ID: "adotante-1",
		Identidade: usuarios.Identidade{
			Username: "mariasilva",
			Senha:    "s3nh4forte",
			Nome:     "Maria Silva",
			CPF:      "12345678901",
		},
		DataNascimento: dataPtr(1990, time.January, 20),
		Telefone:       "11999990000",
	}
}

func TestAdotante_ValidarOK(t *testing.T) {
	if erros := adotanteValido().Validar(hoje); !erros.Vazio() {
		t.Fatalf("esperava adotante válido, got %v", erros)
	}
}

func TestAdotante_IdadeExataNoLimite(t *testing.T) {
	a := adotanteValido()

	// Completa 18 anos exatamente hoje.
	a.DataNascimento = dataPtr(2007, time.June, 15)
	if got := a.Idade(hoje); got != 18 {
		t.Fatalf("idade = %d, want 18", got)
	}
	if erros := a.Validar(hoje); !erros.Vazio() {
		t.Fatalf("18 anos completos deveria passar, got %v", erros)
	}

	// Falta um dia para os 18.
	a.DataNascimento = dataPtr(2007, time.June, 16)
	if got := a.Idade(hoje); got != 17 {
		t.Fatalf("idade = %d, want 17", got)
	}
	erros := a.Validar(hoje)
	if len(erros["data_nascimento"]) == 0 {
		t.Fatalf("menor de idade deveria falhar, got %v", erros)
	}
	if erros["data_nascimento"][0] != "O adotante deve ter pelo menos 18 anos." {
		t.Fatalf("mensagem = %q", erros["data_nascimento"][0])
	}
}

func TestAdotante_ValidarSemNascimento(t *testing.T) {
	a := adotanteValido()
	a.DataNascimento = nil

	erros := a.Validar(hoje)
	if len(erros["data_nascimento"]) != 1 {
		t.Fatalf("esperava só o erro de obrigatoriedade, got %v", erros)
	}
	if erros["data_nascimento"][0] != "A data de nascimento é obrigatória." {
		t.Fatalf("mensagem = %q", erros["data_nascimento"][0])
	}
}

func TestAdotante_ValidarMesclaErrosDaIdentidade(t *testing.T) {
	// Username curto E menor de idade: os dois erros saem juntos,
	// não só o primeiro encontrado.
	a := adotanteValido()
	a.Username = "ana"
	a.DataNascimento = dataPtr(2010, time.January, 1)

	erros := a.Validar(hoje)
	if len(erros["username"]) == 0 {
		t.Fatalf("faltou erro da identidade base: %v", erros)
	}
	if len(erros["data_nascimento"]) == 0 {
		t.Fatalf("faltou erro de idade mínima: %v", erros)
	}
	if len(erros) != 2 {
		t.Fatalf("esperava exatamente 2 campos com erro, got %v", erros)
	}
}
