package bot

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes, used as the "outcome" label.
const (
	OutcomeSolved   = "solved"
	OutcomeCached   = "cached"
	OutcomeTimedOut = "timed_out"
	OutcomeError    = "error"
)

// Metrics counts what the bot does. A nil *Metrics records nothing.
type Metrics struct {
	requests     *prometheus.CounterVec
	solveSeconds prometheus.Histogram
	wordsFound   prometheus.Histogram
}

// NewMetrics creates the bot's metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boggle_bot_requests_total",
				Help: "Total number of solve requests, by outcome",
			},
			[]string{"outcome"},
		),
		solveSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "boggle_bot_solve_seconds",
				Help:    "Time spent searching boards that were not cached",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		wordsFound: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "boggle_bot_words_found",
				Help:    "Number of words found per board",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
	reg.MustRegister(m.requests, m.solveSeconds, m.wordsFound)
	return m
}

func (m *Metrics) outcome(o string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(o).Inc()
}

func (m *Metrics) solved(seconds float64, words int) {
	if m == nil {
		return
	}
	m.solveSeconds.Observe(seconds)
	m.wordsFound.Observe(float64(words))
}
