package fxbuild

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/HazyCorp/numdemo/internal/report"
)

func TestGetConstructors_Graph(t *testing.T) {
	var out, errOut bytes.Buffer

	var runner *report.Runner
	app := fxtest.New(t,
		fx.Supply(Streams{Out: &out, Err: &errOut}),
		fx.Provide(GetConstructors()...),
		fx.NopLogger,
		fx.Populate(&runner),
	)
	app.RequireStart()

	require.NotNil(t, runner)
	require.NoError(t, runner.Run(context.Background(), []string{"3", "oops"}))

	app.RequireStop()

	require.Equal(t, "[WARN] Ignoring invalid number: oops\n"+
		"Count: 1\n"+
		"Mean:  3\n"+
		"Min:   3\n"+
		"Max:   3\n"+
		"Strictly increasing: YES\n"+
		"Sum via add(): 3\n"+
		"Sum * 2 via multiply(): 6\n", out.String())
	require.Empty(t, errOut.String())
}
