package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/helloworld/greeting"
	"github.com/katalvlaran/helloworld/internal/config"
	"github.com/katalvlaran/helloworld/internal/log"
	"github.com/katalvlaran/helloworld/stopwatch"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// app holds state shared by all subcommands.
type app struct {
	out    io.Writer
	logger *log.Logger

	timeIt  bool
	verbose bool
}

// timed wraps fn in a stopwatch when --time is set.
func (a *app) timed(name string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !a.timeIt {
			return fn(cmd, args)
		}
		_, err := stopwatch.Time(name, func() error { return fn(cmd, args) }, stopwatch.WithLogger(a.logger))

		return err
	}
}

// setVerbose turns on debug logging from --verbose or HELLOWORLD_VERBOSE.
func (a *app) setVerbose() error {
	if a.verbose {
		a.logger.SetVerbose(true)
		return nil
	}
	cfg := config.DefaultConfig()
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}
	if cfg.Verbose {
		a.logger.SetVerbose(true)
	}

	return nil
}

func (a *app) runGreet(_ *cobra.Command, args []string) error {
	ga := greeting.ArgumentsFromArgs(args)
	if err := ga.Validate(); err != nil {
		return err
	}
	a.logger.Debug("greeting %v", ga)
	fmt.Fprintln(a.out, greeting.Greeting(ga))

	return nil
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, logger: log.New(errOut, false)}

	root := &cobra.Command{
		Use:           "helloworld [name]",
		Short:         "Greets a name and computes Markov stationary distributions",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setVerbose()
		},
		RunE: a.timed("greet", a.runGreet),
	}
	root.PersistentFlags().BoolVar(&a.timeIt, "time", false, "report how long the command took")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(newMarkovCmd(a), newVersionCmd(a))
	root.SetOut(out)
	root.SetErr(errOut)

	return root
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Program version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, Version)
		},
	}
}
