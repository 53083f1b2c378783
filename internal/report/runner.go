package report

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/HazyCorp/numdemo/internal/runmetrics"
)

const usageHint = "No numbers provided. Example: ./demo 1 2 3 4"

// Logger is the part of hzlog.Logger the runner needs.
type Logger interface {
	Info(ctx context.Context, msg string)
	Warning(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

type Runner struct {
	out    io.Writer
	l      Logger
	m      *runmetrics.Metrics
	c      Config
	tracer trace.Tracer
}

// New returns a Runner writing reports to out. Warnings go to l, which usually
// shares the same stream.
func New(out io.Writer, l Logger, m *runmetrics.Metrics, c Config) *Runner {
	return &Runner{
		out:    out,
		l:      l,
		m:      m,
		c:      c,
		tracer: otel.Tracer("numdemo/report"),
	}
}

// Run parses tokens and prints the report. It only fails when the JSON report
// cannot be written.
func (r *Runner) Run(ctx context.Context, tokens []string) error {
	ctx, span := r.tracer.Start(ctx, "report.Run")
	defer span.End()

	r.m.Runs.Inc()

	parsed := ParseTokens(tokens)
	r.m.TokensAccepted.Add(len(parsed.Values))
	r.m.TokensRejected.Add(len(parsed.Rejected))

	span.SetAttributes(
		attribute.Int("tokens", len(tokens)),
		attribute.Int("accepted", len(parsed.Values)),
		attribute.Int("rejected", len(parsed.Rejected)),
	)

	for _, token := range parsed.Rejected {
		r.l.Warning(ctx, "Ignoring invalid number: "+token)
	}

	if len(parsed.Values) == 0 {
		r.m.EmptyRuns.Inc()
		r.l.Info(ctx, usageHint)
		return nil
	}

	s := Summarize(parsed)

	switch r.c.Format {
	case FormatJSON:
		if err := WriteJSON(r.out, s); err != nil {
			span.RecordError(err)
			r.l.Error(ctx, "Cannot write report: "+err.Error())
			return errors.Wrap(err, "cannot write report")
		}
	default:
		WriteText(r.out, s)
	}

	return nil
}
