package fxbuild

import (
	"io"

	"go.uber.org/fx"

	"github.com/HazyCorp/numdemo/internal/configuration"
	"github.com/HazyCorp/numdemo/internal/fxutil"
	"github.com/HazyCorp/numdemo/internal/report"
	"github.com/HazyCorp/numdemo/internal/runmetrics"
	"github.com/HazyCorp/numdemo/pkg/common/hzlog"
)

// Streams are the process streams of one command execution. Logs and the
// report share Out.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

func NewLogger(c hzlog.Config, s Streams, lc fx.Lifecycle) (*hzlog.Logger, error) {
	return hzlog.NewFX(c, s.Out, lc)
}

func NewMetrics(c runmetrics.Config, s Streams, lc fx.Lifecycle) *runmetrics.Metrics {
	return runmetrics.NewFX(c, s.Err, lc)
}

func NewRunner(s Streams, l report.Logger, m *runmetrics.Metrics, c report.Config) *report.Runner {
	return report.New(s.Out, l, m, c)
}

func GetConstructors() []interface{} {
	return []interface{}{
		configuration.Read,
		fxutil.AsIface[report.Logger](NewLogger),
		NewMetrics,
		NewRunner,
	}
}
