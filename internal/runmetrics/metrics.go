package runmetrics

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/fx"
)

type Config struct {
	// Dump writes the Prometheus exposition of the run to the dump writer on stop.
	Dump bool `json:"dump" yaml:"dump"`
}

// Metrics is scoped to one run; counters live in a private set.
type Metrics struct {
	set *metrics.Set

	Runs           *metrics.Counter
	EmptyRuns      *metrics.Counter
	TokensAccepted *metrics.Counter
	TokensRejected *metrics.Counter
}

func New() *Metrics {
	s := metrics.NewSet()

	template := `numdemo_tokens_total{status=%q}`
	return &Metrics{
		set:            s,
		Runs:           s.NewCounter("numdemo_runs_total"),
		EmptyRuns:      s.NewCounter("numdemo_empty_runs_total"),
		TokensAccepted: s.NewCounter(fmt.Sprintf(template, "accepted")),
		TokensRejected: s.NewCounter(fmt.Sprintf(template, "rejected")),
	}
}

func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

// NewFX registers the dump hook when conf.Dump is set.
func NewFX(conf Config, dump io.Writer, lc fx.Lifecycle) *Metrics {
	m := New()
	if conf.Dump {
		lc.Append(fx.StopHook(func() {
			m.WritePrometheus(dump)
		}))
	}

	return m
}
