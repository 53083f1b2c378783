package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/HazyCorp/numdemo/internal/fxbuild"
	"github.com/HazyCorp/numdemo/internal/report"
	"github.com/HazyCorp/numdemo/internal/util"
)

// newRootCmd builds the command. Flag parsing is disabled: every argument,
// "-5" and "--help" included, is a number token.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "numdemo [token ...]",
		Short:              "prints count, mean, min, max and sums of the integers given as arguments",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), fxbuild.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}, args)
		},
	}
}

func run(ctx context.Context, streams fxbuild.Streams, args []string) error {
	var runner *report.Runner
	app := fx.New(
		fx.Supply(streams),
		fx.Provide(fxbuild.GetConstructors()...),
		fx.WithLogger(func() fxevent.Logger { return &fxevent.NopLogger }),
		fx.Invoke(func(r *report.Runner) {
			runner = r
		}),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "cannot build the app")
	}

	runErr := runner.Run(ctx, args)

	if err := app.Stop(ctx); err != nil && runErr == nil {
		return errors.Wrap(err, "cannot stop the app")
	}

	return runErr
}

func Execute() {
	ctx, cancel := util.CtxWithShutdown()
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "❌❌❌ Error occurred: %s\n", err)
		cancel()
		os.Exit(1)
	}
}
