package coordenadores

import (
	"time"
	"unicode/utf8"

	"adocato/internal/domain/usuarios"
	"adocato/internal/domain/validacao"
)

// Coordenador avalia solicitações de adoção. Embute a Identidade de
// cadastro comum; o apelido é único entre coordenadores.
type Coordenador struct {
	ID string
	usuarios.Identidade

	Apelido string

	CriadoEm     time.Time
	AtualizadoEm time.Time
}

func (c Coordenador) Validar() validacao.Erros {
	erros := c.Identidade.Validar()

	if utf8.RuneCountInString(c.Apelido) < 3 {
		erros.Add("apelido", "O apelido deve ter pelo menos 3 caracteres.")
	}

	return erros
}
