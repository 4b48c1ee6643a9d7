// Package ganrprom exports ganr tracker activity as Prometheus metrics.
package ganrprom

import (
	"strings"

	"github.com/gordian-engine/ganr/ganr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is both a [ganr.Listener] and a [ganr.TickObserver].
// Register it on a tracker with ganr.WithListener and ganr.WithTickObserver.
type Metrics struct {
	hangsStarted prometheus.Counter
	hangsEnded   prometheus.Counter
	hanging      prometheus.Gauge

	ticks   *prometheus.CounterVec
	latency prometheus.Histogram
}

// New registers the tracker metrics on reg,
// labeled with tracker=name so several trackers can share one registry.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, name string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := prometheus.Labels{"tracker": name}

	return &Metrics{
		hangsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name:        "ganr_hangs_started_total",
			Help:        "Number of confirmed hangs of the guarded thread",
			ConstLabels: labels,
		}),
		hangsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name:        "ganr_hangs_ended_total",
			Help:        "Number of hangs after which the guarded thread responded again",
			ConstLabels: labels,
		}),
		hanging: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "ganr_hanging",
			Help:        "1 while a hang is confirmed and unresolved, otherwise 0",
			ConstLabels: labels,
		}),
		ticks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "ganr_ticks_total",
				Help:        "Watchdog ticks by probe outcome and suppression reason",
				ConstLabels: labels,
			},
			[]string{"outcome", "suppression"},
		),
		latency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "ganr_probe_latency_seconds",
			Help:        "Round-trip latency of answered probes in seconds",
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) HandleHangEvent(e ganr.Event) {
	switch e {
	case ganr.HangStarted:
		m.hangsStarted.Inc()
		m.hanging.Set(1)
	case ganr.HangEnded:
		m.hangsEnded.Inc()
		m.hanging.Set(0)
	}
}

func (m *Metrics) ObserveTick(res ganr.TickResult) {
	outcome := "missed"
	if res.Answered {
		outcome = "answered"
		m.latency.Observe(res.Latency.Seconds())
	}

	m.ticks.WithLabelValues(outcome, strings.ToLower(res.Suppression.String())).Inc()
}

var (
	_ ganr.Listener     = (*Metrics)(nil)
	_ ganr.TickObserver = (*Metrics)(nil)
)
