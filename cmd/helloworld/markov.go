package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/helloworld/internal/config"
	"github.com/katalvlaran/helloworld/markov"
	"github.com/katalvlaran/helloworld/matrix"
)

// Flag names for the markov subcommand.
const (
	flagMatrix     = "matrix"
	flagVector     = "vector"
	flagTolerance  = "tol"
	flagMaxIter    = "max-iter"
	flagExact      = "exact"
	flagNorm       = "norm"
	flagStochastic = "stochastic"
	flagConfig     = "config"
)

const (
	rowSep = ";"
	colSep = ","
)

var (
	errNoMatrix = errors.New("markov: a transition matrix is required (--matrix or config)")
	errNoVector = errors.New("markov: a starting vector is required (--vector or config)")
)

type markovFlags struct {
	matrix     string
	vector     string
	tol        float64
	maxIter    int
	exact      bool
	norm       string
	stochastic bool
	config     string
}

func newMarkovCmd(a *app) *cobra.Command {
	f := &markovFlags{}
	cmd := &cobra.Command{
		Use:   "markov",
		Short: "Compute the stationary distribution of a Markov chain by power iteration",
		Example: `  helloworld markov --matrix "0.2,0.6,0.2;0.1,0.5,0.4;0.3,0.3,0.4" --vector "1,0,0"
  helloworld markov --config chain.yaml --exact --max-iter 100`,
		Args: cobra.NoArgs,
	}
	cmd.RunE = a.timed("markov", func(cmd *cobra.Command, _ []string) error {
		return a.runMarkov(cmd, f)
	})

	fs := cmd.Flags()
	fs.StringVarP(&f.matrix, flagMatrix, "m", "", `transition matrix, rows separated by ";" and values by ","`)
	fs.StringVarP(&f.vector, flagVector, "p", "", `starting distribution, values separated by ","`)
	fs.Float64Var(&f.tol, flagTolerance, markov.DefaultTolerance, "convergence tolerance on successive iterates")
	fs.IntVar(&f.maxIter, flagMaxIter, markov.DefaultMaxIterations, "maximum number of multiplications")
	fs.BoolVar(&f.exact, flagExact, false, "stop only when successive iterates are identical")
	fs.StringVar(&f.norm, flagNorm, markov.NormMax.String(), "distance for the convergence check (max|l1)")
	fs.BoolVar(&f.stochastic, flagStochastic, false, "reject matrices whose rows are not probability distributions")
	fs.StringVarP(&f.config, flagConfig, "c", "", "YAML solver profile")

	return cmd
}

// resolve merges config (defaults, env, file) with explicitly set flags.
func (f *markovFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed(flagMatrix) {
		if cfg.Matrix, err = parseMatrix(f.matrix); err != nil {
			return nil, fmt.Errorf("--%s: %w", flagMatrix, err)
		}
	}
	if fs.Changed(flagVector) {
		if cfg.Vector, err = parseVector(f.vector); err != nil {
			return nil, fmt.Errorf("--%s: %w", flagVector, err)
		}
	}
	if fs.Changed(flagTolerance) {
		tol := f.tol
		cfg.Tolerance = &tol
	}
	if f.exact {
		zero := 0.0
		cfg.Tolerance = &zero
	}
	if fs.Changed(flagMaxIter) {
		cfg.MaxIterations = f.maxIter
	}
	if fs.Changed(flagNorm) {
		cfg.Norm = f.norm
	}
	if f.stochastic {
		cfg.StochasticCheck = true
	}
	if cfg.MaxIterations == 0 && fs.Changed(flagMaxIter) {
		return nil, fmt.Errorf("%w: --%s must be >= 1", config.ErrInvalidConfig, flagMaxIter)
	}

	return cfg, cfg.Validate()
}

func (a *app) runMarkov(cmd *cobra.Command, f *markovFlags) error {
	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		a.logger.SetVerbose(true)
	}
	if len(cfg.Matrix) == 0 {
		return errNoMatrix
	}
	if len(cfg.Vector) == 0 {
		return errNoVector
	}

	m, err := matrix.NewDenseFromRows(cfg.Matrix)
	if err != nil {
		return err
	}
	opts, err := cfg.SolverOptions()
	if err != nil {
		return err
	}
	eff := markov.NewOptions(opts...)
	a.logger.Debug("solving %d-state chain: tol=%g max-iter=%d norm=%s", m.Rows(), eff.Tolerance(), eff.MaxIterations(), eff.Norm())

	res, err := markov.Solve(m, cfg.Vector, opts...)
	if err != nil {
		if errors.Is(err, markov.ErrNonConvergence) {
			fmt.Fprintf(a.out, "last:       %s\n", formatVector(res.Vector))
		}
		return err
	}
	a.logger.Debug("converged with residual %g", res.Residual)

	fmt.Fprintf(a.out, "stationary: %s\n", formatVector(res.Vector))
	fmt.Fprintf(a.out, "iterations: %d\n", res.Iterations)

	return nil
}

// parseVector parses "a,b,c".
func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, colSep)
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("value %d is empty", i)
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseMatrix parses "a,b;c,d". Shape checks happen in matrix.NewDenseFromRows.
func parseMatrix(s string) ([][]float64, error) {
	rows := strings.Split(strings.TrimSpace(s), rowSep)
	out := make([][]float64, 0, len(rows))
	for i, r := range rows {
		row, err := parseVector(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, row)
	}

	return out, nil
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', 6, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
