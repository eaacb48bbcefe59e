package solicitacoes

import (
	"time"

	"adocato/internal/domain/gatos"
	"adocato/internal/domain/validacao"
)

// Status da solicitação de adoção.
// @Enum EM_ANALISE, APROVADA, REPROVADA, EM_RECURSO
type Status string

const (
	StatusEmAnalise Status = "EM_ANALISE"
	StatusAprovada  Status = "APROVADA"
	StatusReprovada Status = "REPROVADA"
	StatusEmRecurso Status = "EM_RECURSO"
)

// prazoAnalise é o limite, em dias corridos, para uma solicitação ser
// considerada atrasada.
const prazoAnalise = 7

// Solicitacao liga um adotante a um gato. CriadaEm é imutável.
type Solicitacao struct {
	ID         string
	AdotanteID string
	GatoID     string

	Recurso string
	Status  Status

	CriadaEm time.Time
}

// Validar recebe o gato já carregado (nil quando não encontrado); a regra
// só olha a disponibilidade, a existência é checada pelo service.
func (s Solicitacao) Validar(gato *gatos.Gato) validacao.Erros {
	erros := validacao.Novo()

	if gato != nil && !gato.Disponivel {
		erros.Add("gato", "O gato selecionado não está disponível para adoção.")
	}
	if s.AdotanteID == "" {
		erros.Add("adotante", "A/O adotante é obrigatória.")
	}

	return erros
}

// Atrasada: dias inteiros decorridos desde a criação acima do prazo.
// No dia 7 exato ainda não está atrasada; no dia 8, está.
func (s Solicitacao) Atrasada(agora time.Time) bool {
	dias := int(agora.Sub(s.CriadaEm).Hours() / 24)
	return dias > prazoAnalise
}

// Avaliacao é o parecer de um coordenador sobre a solicitação.
// AvaliadaEm é imutável.
type Avaliacao struct {
	ID            string
	SolicitacaoID string
	CoordenadorID string

	Parecer string

	AvaliadaEm time.Time
}

// Documento anexado à solicitação; só o caminho do arquivo é persistido.
// EnviadoEm é imutável.
type Documento struct {
	ID            string
	SolicitacaoID string

	Arquivo   string
	Descricao string

	EnviadoEm time.Time
}
