package adotantes

import (
	"time"

	"adocato/internal/domain/usuarios"
	"adocato/internal/domain/validacao"
)

const idadeMinima = 18

// Adotante é quem pode abrir solicitações de adoção. Embute a Identidade
// de cadastro comum e acrescenta as próprias regras.
type Adotante struct {
	ID string
	usuarios.Identidade

	DataNascimento *time.Time
	Telefone       string
	Foto           string

	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// Validar mescla os erros da identidade base com os do papel, de modo que
// uma única falha reporte tudo de uma vez (username curto E menor de idade
// saem juntos, não um por vez).
func (a Adotante) Validar(hoje time.Time) validacao.Erros {
	erros := a.Identidade.Validar()

	if a.DataNascimento == nil {
		erros.Add("data_nascimento", "A data de nascimento é obrigatória.")
		return erros
	}
	if aposODia(*a.DataNascimento, hoje) {
		erros.Add("data_nascimento", "A data de nascimento não pode ser no futuro.")
	}
	if a.Idade(hoje) < idadeMinima {
		erros.Add("data_nascimento", "O adotante deve ter pelo menos 18 anos.")
	}

	return erros
}

// Idade em anos completos na data de referência; 0 sem data de nascimento.
func (a Adotante) Idade(ref time.Time) int {
	if a.DataNascimento == nil {
		return 0
	}
	n := *a.DataNascimento
	idade := ref.Year() - n.Year()
	if ref.Month() < n.Month() || (ref.Month() == n.Month() && ref.Day() < n.Day()) {
		idade--
	}
	return idade
}

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
