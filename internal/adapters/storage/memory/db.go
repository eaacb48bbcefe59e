package memory

import (
	"sync"

	"adocato/internal/domain/adotantes"
	"adocato/internal/domain/coordenadores"
	"adocato/internal/domain/gatos"
	"adocato/internal/domain/leilao"
	"adocato/internal/domain/racas"
	"adocato/internal/domain/solicitacoes"
)

// DB é o armazenamento em memória para dev e testes. As coleções vivem
// num único struct, sob um único lock, para que as restrições entre
// agregados (um gato com solicitação não pode ser excluído) sejam
// verificáveis pelos repositórios.
type DB struct {
	mu sync.RWMutex

	racas         map[string]racas.Raca
	gatos         map[string]gatos.Gato
	adotantes     map[string]adotantes.Adotante
	coordenadores map[string]coordenadores.Coordenador

	solicitacoes map[string]solicitacoes.Solicitacao
	avaliacoes   map[string][]solicitacoes.Avaliacao
	documentos   map[string][]solicitacoes.Documento

	participantes map[string]leilao.Participante
	leiloes       map[string]leilao.Leilao
	itens         map[string]leilao.ItemLeilao
	lances        map[string][]leilao.Lance
}

func NewDB() *DB {
	return &DB{
		racas:         make(map[string]racas.Raca),
		gatos:         make(map[string]gatos.Gato),
		adotantes:     make(map[string]adotantes.Adotante),
		coordenadores: make(map[string]coordenadores.Coordenador),
		solicitacoes:  make(map[string]solicitacoes.Solicitacao),
		avaliacoes:    make(map[string][]solicitacoes.Avaliacao),
		documentos:    make(map[string][]solicitacoes.Documento),
		participantes: make(map[string]leilao.Participante),
		leiloes:       make(map[string]leilao.Leilao),
		itens:         make(map[string]leilao.ItemLeilao),
		lances:        make(map[string][]leilao.Lance),
	}
}
