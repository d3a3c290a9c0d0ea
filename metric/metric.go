package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/varmodel/catdomain/domain"
)

// Metrics contains the registry-level metrics exported by this package.
type Metrics struct {
	InternsTotal *prometheus.CounterVec
	TrimsTotal   *prometheus.CounterVec
	DomainSize   *prometheus.GaugeVec
	Generation   *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all registry metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		InternsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catdomain",
				Subsystem: "registry",
				Name:      "interns_total",
				Help:      "Total number of fresh value interns per domain",
			},
			[]string{"domain"},
		),

		TrimsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "catdomain",
				Subsystem: "registry",
				Name:      "trims_total",
				Help:      "Total number of vocabulary trims per domain",
			},
			[]string{"domain"},
		),

		DomainSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "catdomain",
				Subsystem: "registry",
				Name:      "size",
				Help:      "Current number of distinct interned values per domain",
			},
			[]string{"domain"},
		),

		Generation: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "catdomain",
				Subsystem: "registry",
				Name:      "generation",
				Help:      "Index-space generation per domain, incremented by each trim",
			},
			[]string{"domain"},
		),
	}
}

// Register registers all metrics with the given prometheus registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.InternsTotal,
		m.TrimsTotal,
		m.DomainSize,
		m.Generation,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observer returns a domain.Observer that records events under the given
// domain name. Subscribe it to a registry:
//
//	reg.Subscribe(metrics.Observer("tokens"))
func (m *Metrics) Observer(name string) domain.Observer {
	return &observer{metrics: m, domain: name}
}

type observer struct {
	metrics *Metrics
	domain  string
}

func (o *observer) OnDomainEvent(e domain.Event) {
	switch e.Type {
	case domain.EventInterned:
		o.metrics.InternsTotal.WithLabelValues(o.domain).Inc()
		o.metrics.DomainSize.WithLabelValues(o.domain).Set(float64(e.Size))
	case domain.EventTrimmed:
		o.metrics.TrimsTotal.WithLabelValues(o.domain).Inc()
		o.metrics.DomainSize.WithLabelValues(o.domain).Set(float64(e.Size))
		o.metrics.Generation.WithLabelValues(o.domain).Set(float64(e.Generation))
	}
}
