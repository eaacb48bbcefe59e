package usuarios

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"adocato/internal/domain/validacao"
)

// Identidade é o núcleo de cadastro compartilhado por adotantes e
// coordenadores. Cada papel embute (não herda) este value object e mescla
// a validação dele com as próprias regras.
//
// A senha é armazenada como recebida, apenas com checagem de tamanho;
// hashing de credencial é uma preocupação separada do cadastro.
type Identidade struct {
	Username string
	Senha    string
	Nome     string
	CPF      string
}

func (i Identidade) Validar() validacao.Erros {
	erros := validacao.Novo()

	if utf8.RuneCountInString(i.Nome) < 5 {
		erros.Add("nome", "O nome completo deve ter pelo menos 5 caracteres.")
	}
	if !cpfValido(i.CPF) {
		erros.Add("cpf", "O CPF deve conter exatamente 11 dígitos numéricos.")
	}
	if utf8.RuneCountInString(i.Username) < 5 {
		erros.Add("username", "O nome de usuário deve ter pelo menos 5 caracteres.")
	}
	if utf8.RuneCountInString(i.Senha) < 6 {
		erros.Add("password", "A senha deve ter pelo menos 6 caracteres.")
	}

	return erros
}

// CPFFormatado devolve o CPF no formato 000.000.000-00.
// Para CPF fora do padrão devolve o valor cru.
func (i Identidade) CPFFormatado() string {
	if !cpfValido(i.CPF) {
		return i.CPF
	}
	return fmt.Sprintf("%s.%s.%s-%s", i.CPF[:3], i.CPF[3:6], i.CPF[6:9], i.CPF[9:])
}

func cpfValido(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
