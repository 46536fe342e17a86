package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/percona/percona-iulist/config"
	"github.com/percona/percona-iulist/dump"
	"github.com/percona/percona-iulist/errors"
	"github.com/percona/percona-iulist/list"
	"github.com/percona/percona-iulist/log"
	"github.com/percona/percona-iulist/metrics"
	"github.com/percona/percona-iulist/scenario"
	"github.com/percona/percona-iulist/sel"
	"github.com/percona/percona-iulist/util"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals

var errCasesFailed = errors.New("some cases failed")

func main() {
	err := newRootCmd().Execute()
	if errors.Is(err, errCasesFailed) {
		os.Exit(1)
	}
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "iulist",
		Short: "Run list scenarios and inspect list layouts",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				log.InitGlobals(0, logJSON, true).Fatal().Msg("Unknown log level")
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor)
			ctx := lg.WithContext(context.Background())
			cmd.SetContext(ctx)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")

	rootCmd.AddCommand(newRunCmd(), newDumpCmd(), newKindsCmd(), newVersionCmd())

	return rootCmd
}

func newRunCmd() *cobra.Command {
	var (
		include     []string
		exclude     []string
		showMetrics bool
		timeout     time.Duration
	)

	kind := &kindFlag{value: config.Kind(), allowAll: true}

	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Run scenario files against list kinds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := kind.Kinds()
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			if showMetrics {
				metrics.Init(reg)
			}

			var failed int
			err = util.CtxWithTimeout(cmd.Context(), timeout, func(ctx context.Context) error {
				var err error
				failed, err = runFiles(ctx, cmd.OutOrStdout(), args, kinds, sel.MakeFilter(include, exclude))
				return err
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			if showMetrics {
				if err := printMetrics(cmd.OutOrStdout(), reg); err != nil {
					return errors.Wrap(err, "metrics")
				}
			}

			if failed != 0 {
				return errCasesFailed
			}

			return nil
		},
	}

	addKindFlag(cmd.Flags(), kind)
	cmd.Flags().StringSliceVar(&include, "include", nil, "Run only matching cases (suite.case or suite.*)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Skip matching cases (suite.case or suite.*)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print collected metrics after the run")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the run after this duration (0 means no limit)")

	return cmd
}

func newDumpCmd() *cobra.Command {
	var capacity int

	kind := &kindFlag{value: config.Kind()}

	cmd := &cobra.Command{
		Use:   "dump [VALUE...]",
		Short: "Build a list from values and print its internal layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := kind.Kinds()
			if err != nil {
				return err
			}

			l, err := list.New[string](kinds[0], list.WithCapacity(capacity))
			if err != nil {
				return err //nolint:wrapcheck
			}

			for _, v := range args {
				l.AddToRear(v)
			}

			log.Ctx(cmd.Context()).With(log.ListKind(string(kinds[0]))).Debugf("built %s", l)

			return dump.Render(cmd.OutOrStdout(), l.Snapshot())
		},
	}

	addKindFlag(cmd.Flags(), kind)
	cmd.Flags().IntVar(&capacity, "capacity", config.Capacity(), "Initial capacity of an array-backed list")

	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the supported list kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range list.Kinds() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "iulist", version)
		},
	}
}

// runFiles runs every file and prints the reports. It returns the number of failed cases.
func runFiles(
	ctx context.Context,
	out io.Writer,
	files []string,
	kinds []list.Kind,
	filter sel.CaseFilter,
) (int, error) {
	start := time.Now()
	failed := 0

	for _, path := range files {
		lg := log.Ctx(ctx).With(log.Scope(path))

		s, err := scenario.Load(path)
		if err != nil {
			return failed, err //nolint:wrapcheck
		}

		lg.Debugf("loaded suite %q with %d cases", s.Name, len(s.Cases))

		reports, err := scenario.RunKinds(ctx, s, kinds, filter)
		if err != nil {
			return failed, errors.Wrap(err, path)
		}

		for _, rep := range reports {
			printReport(out, rep)
			failed += rep.Failed()
		}
	}

	elapsed := time.Since(start)
	metrics.SetRunDuration(elapsed)
	printSummary(out, failed, elapsed)

	return failed, nil
}
