package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores Prometheus da aplicação.
// Métodos toleram receiver nil para os services rodarem sem métricas em testes.
type Metrics struct {
	GatosCadastrados    prometheus.Counter
	SolicitacoesCriadas prometheus.Counter
	LancesRegistrados   prometheus.Counter
}

var (
	once     sync.Once
	instance *Metrics
)

// New devolve sempre a mesma instância: o registro Prometheus não
// aceita contadores duplicados.
func New() *Metrics {
	once.Do(func() {
		instance = newMetrics()
	})
	return instance
}

func newMetrics() *Metrics {
	return &Metrics{
		GatosCadastrados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adocato_gatos_cadastrados_total",
			Help: "Total de gatos cadastrados no sistema",
		}),
		SolicitacoesCriadas: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adocato_solicitacoes_criadas_total",
			Help: "Total de solicitações de adoção criadas",
		}),
		LancesRegistrados: promauto.NewCounter(prometheus.CounterOpts{
			Name: "adocato_lances_registrados_total",
			Help: "Total de lances registrados nos leilões",
		}),
	}
}

func (m *Metrics) IncGatosCadastrados() {
	if m == nil {
		return
	}
	m.GatosCadastrados.Inc()
}

func (m *Metrics) IncSolicitacoesCriadas() {
	if m == nil {
		return
	}
	m.SolicitacoesCriadas.Inc()
}

func (m *Metrics) IncLancesRegistrados() {
	if m == nil {
		return
	}
	m.LancesRegistrados.Inc()
}
