package usuarios

import "testing"

func identidadeValida() Identidade {
	return Identidade{
		Username: "mariasilva",
		Senha:    "s3nh4forte",
		Nome:     "Maria Silva",
		CPF:      "12345678901",
	}
}

func TestIdentidade_Valida(t *testing.T) {
	if erros := identidadeValida().Validar(); !erros.Vazio() {
		t.Fatalf("esperava identidade válida, got %v", erros)
	}
}

func TestIdentidade_Validar(t *testing.T) {
	cases := []struct {
		nome  string
		mutar func(*Identidade)
		campo string
	}{
		{"nome curto", func(i *Identidade) { i.Nome = "Ana" }, "nome"},
		{"cpf curto", func(i *Identidade) { i.CPF = "123" }, "cpf"},
		{"cpf com letras", func(i *Identidade) { i.CPF = "1234567890a" }, "cpf"},
		{"username curto", func(i *Identidade) { i.Username = "ana" }, "username"},
		{"senha curta", func(i *Identidade) { i.Senha = "12345" }, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			id := identidadeValida()
			tc.mutar(&id)

			erros := id.Validar()
			if len(erros[tc.campo]) == 0 {
				t.Fatalf("esperava erro no campo %q, got %v", tc.campo, erros)
			}
			if len(erros) != 1 {
				t.Fatalf("esperava só o campo %q com erro, got %v", tc.campo, erros)
			}
		})
	}
}

func TestIdentidade_ValidarAcumulaTodosOsErros(t *testing.T) {
	id := Identidade{Username: "ana", Senha: "123", Nome: "Ana", CPF: "99"}

	erros := id.Validar()
	for _, campo := range []string{"nome", "cpf", "username", "password"} {
		if len(erros[campo]) == 0 {
			t.Errorf("faltou erro no campo %q: %v", campo, erros)
		}
	}
}

func TestIdentidade_CPFFormatado(t *testing.T) {
	id := identidadeValida()
	if got := id.CPFFormatado(); got != "123.456.789-01" {
		t.Fatalf("CPFFormatado = %q", got)
	}

	id.CPF = "123"
	if got := id.CPFFormatado(); got != "123" {
		t.Fatalf("CPF inválido deveria sair cru, got %q", got)
	}
}
