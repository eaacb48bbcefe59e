package validacao

import "testing"

func TestErros_MergeAcumulaPorCampo(t *testing.T) {
	base := Novo()
	base.Add("username", "O nome de usuário deve ter pelo menos 5 caracteres.")

	e := Novo()
	e.Add("data_nascimento", "O adotante deve ter pelo menos 18 anos.")
	e.Merge(base)

	if len(e) != 2 {
		t.Fatalf("expected 2 campos, got %d", len(e))
	}
	if len(e["username"]) != 1 || len(e["data_nascimento"]) != 1 {
		t.Fatalf("unexpected merge result: %#v", e)
	}
}

func TestErros_VazioEErrorEstavel(t *testing.T) {
	e := Novo()
	if !e.Vazio() {
		t.Fatal("novo Erros deveria ser vazio")
	}

	e.Add("nome", "msg a")
	e.Add("cor", "msg b")

	if e.Vazio() {
		t.Fatal("Erros com campos não é vazio")
	}

	want := "cor: msg b | nome: msg a"
	if got := e.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
