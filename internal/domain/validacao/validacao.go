package validacao

import (
	"fmt"
	"sort"
	"strings"
)

// Erros agrupa mensagens de validação por campo.
// Mapa vazio (ou nil) significa entidade válida.
type Erros map[string][]string

func Novo() Erros {
	return Erros{}
}

func (e Erros) Add(campo, mensagem string) {
	e[campo] = append(e[campo], mensagem)
}

// Merge incorpora os erros de outra validação (ex.: a identidade base
// dentro de adotante/coordenador) preservando os já acumulados.
func (e Erros) Merge(outros Erros) {
	for campo, msgs := range outros {
		e[campo] = append(e[campo], msgs...)
	}
}

func (e Erros) Vazio() bool {
	return len(e) == 0
}

// Error implementa error com saída estável (campos ordenados),
// útil em logs e em testes.
func (e Erros) Error() string {
	campos := make([]string, 0, len(e))
	for campo := range e {
		campos = append(campos, campo)
	}
	sort.Strings(campos)

	parts := make([]string, 0, len(campos))
	for _, campo := range campos {
		parts = append(parts, fmt.Sprintf("%s: %s", campo, strings.Join(e[campo], "; ")))
	}
	return strings.Join(parts, " | ")
}
