// Package metrics records search and verification outcomes as Prometheus
// metrics. A Collector plugs into search.WithObserver and
// heuristic.WithObserver and can dump its registry in the text exposition
// format for one-shot CLI runs.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

const namespace = "lvsearch"

// Outcome label values.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	ResultPass      = "pass"
	ResultFail      = "fail"
)

// Collector implements search.Observer and heuristic.Observer.
// It is safe for concurrent use.
type Collector struct {
	reg *prometheus.Registry

	searches      *prometheus.CounterVec
	statesVisited *prometheus.HistogramVec
	expansions    *prometheus.HistogramVec
	duration      *prometheus.HistogramVec

	verifications *prometheus.CounterVec
	judgments     *prometheus.CounterVec
}

// New registers the lvsearch metrics on reg, or on a fresh registry when reg
// is nil. It panics if reg already holds them.
func New(reg *prometheus.Registry) *Collector {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	sizes := prometheus.ExponentialBuckets(1, 4, 10)

	return &Collector{
		reg: reg,
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		statesVisited: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "states_visited",
			Help:      "Distinct states expanded per completed search",
			Buckets:   sizes,
		}, []string{"strategy"}),
		expansions: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expansions",
			Help:      "Expansions, re-expansions included, per completed search",
			Buckets:   sizes,
		}, []string{"strategy"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall time per search",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 10, 8),
		}, []string{"strategy"}),
		verifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heuristic",
			Name:      "checks_total",
			Help:      "Heuristic checks by kind and verdict",
		}, []string{"kind", "verdict"}),
		judgments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "heuristic",
			Name:      "judgments_total",
			Help:      "Per-item heuristic judgments by kind and result",
		}, []string{"kind", "result"}),
	}
}

// Registry returns the registry the metrics live on.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveSearch implements search.Observer.
func (c *Collector) ObserveSearch(strategy search.Strategy, res *search.Result, err error, elapsed time.Duration) {
	s := strategy.String()
	c.duration.WithLabelValues(s).Observe(elapsed.Seconds())
	switch {
	case err != nil:
		c.searches.WithLabelValues(s, OutcomeError).Inc()
		return
	case res.Found:
		c.searches.WithLabelValues(s, OutcomeFound).Inc()
	default:
		c.searches.WithLabelValues(s, OutcomeNotFound).Inc()
	}
	c.statesVisited.WithLabelValues(s).Observe(float64(res.StatesVisited))
	c.expansions.WithLabelValues(s).Observe(float64(res.Expansions))
}

// ObserveVerification implements heuristic.Observer.
func (c *Collector) ObserveVerification(kind heuristic.Kind, rep *heuristic.Report, err error, _ time.Duration) {
	k := kind.String()
	if err != nil {
		c.verifications.WithLabelValues(k, OutcomeError).Inc()
		return
	}
	verdict := ResultPass
	if !rep.Verdict {
		verdict = ResultFail
	}
	c.verifications.WithLabelValues(k, verdict).Inc()

	failed := len(rep.Failures())
	c.judgments.WithLabelValues(k, ResultPass).Add(float64(len(rep.Judgments) - failed))
	c.judgments.WithLabelValues(k, ResultFail).Add(float64(failed))
}

// WriteText gathers the registry and writes every family in the Prometheus
// text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
