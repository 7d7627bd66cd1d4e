package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/helloworld/greeting"
	"github.com/katalvlaran/helloworld/internal/config"
	"github.com/katalvlaran/helloworld/markov"
	"github.com/katalvlaran/helloworld/matrix"
)

const (
	ergodicFlag = "0.2,0.6,0.2;0.1,0.5,0.4;0.3,0.3,0.4"
	ergodicOut  = "stationary: [0.191489 0.446809 0.361702]"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

// clearEnv keeps HELLOWORLD_* variables from the host out of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvTolerance, config.EnvMaxIterations, config.EnvNorm, config.EnvVerbose} {
		t.Setenv(k, "")
	}
}

func TestGreet(t *testing.T) {
	out, _, err := run(t, "Gopher")
	require.NoError(t, err)
	require.Equal(t, "Hello, Gopher!\n", out)
}

func TestGreet_NoArguments(t *testing.T) {
	out, _, err := run(t)
	require.ErrorIs(t, err, greeting.ErrNoArguments)
	require.Empty(t, out)
	require.Equal(t, greeting.ExitNoArguments, exitCode(err))
	require.Equal(t, exitFailure, exitCode(errors.New("boom")))
}

func TestGreet_TooManyArguments(t *testing.T) {
	_, _, err := run(t, "a", "b")
	require.Error(t, err)
}

func TestGreet_Time(t *testing.T) {
	out, errOut, err := run(t, "--time", "Gopher")
	require.NoError(t, err)
	require.Equal(t, "Hello, Gopher!\n", out)
	require.Contains(t, errOut, "Stopwatch greet elapsed")
}

func TestGreet_Verbose(t *testing.T) {
	_, errOut, err := run(t, "-v", "Gopher")
	require.NoError(t, err)
	require.Contains(t, errOut, `Arguments{Name: "Gopher"}`)
}

func TestGreet_VerboseFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvVerbose, "true")

	out, errOut, err := run(t, "Gopher")
	require.NoError(t, err)
	require.Equal(t, "Hello, Gopher!\n", out)
	require.Contains(t, errOut, `Arguments{Name: "Gopher"}`)

	t.Setenv(config.EnvVerbose, "maybe")
	_, _, err = run(t, "Gopher")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, Version+"\n", out)
}

func TestMarkov_Flags(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "markov", "--matrix", ergodicFlag, "--vector", "1,0,0")
	require.NoError(t, err)
	require.Contains(t, out, ergodicOut)
	require.Contains(t, out, "iterations: ")
}

func TestMarkov_Periodic(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "markov", "-m", "0,1;1,0", "-p", "0.5,0.5")
	require.NoError(t, err)
	require.Equal(t, "stationary: [0.500000 0.500000]\niterations: 1\n", out)
}

func TestMarkov_Config(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "chain.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tolerance: 1e-12
stochastic_check: true
matrix:
  - [0.2, 0.6, 0.2]
  - [0.1, 0.5, 0.4]
  - [0.3, 0.3, 0.4]
vector: [0, 0, 1]
`), 0o644))

	out, _, err := run(t, "markov", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, ergodicOut)

	// A flag beats the file.
	out, _, err = run(t, "markov", "--config", path, "--vector", "0.5,0.5")
	require.ErrorIs(t, err, markov.ErrDimensionMismatch)
	require.Empty(t, out)
}

func TestMarkov_NonConvergence(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "markov", "-m", "1,0;0.5,0.5", "-p", "0,1", "--exact", "--max-iter", "5")
	require.ErrorIs(t, err, markov.ErrNonConvergence)
	require.True(t, strings.HasPrefix(out, "last:"))
}

func TestMarkov_Time(t *testing.T) {
	clearEnv(t)
	_, errOut, err := run(t, "--time", "markov", "-m", "1", "-p", "1")
	require.NoError(t, err)
	require.Contains(t, errOut, "Stopwatch markov elapsed")
}

func TestMarkov_Errors(t *testing.T) {
	clearEnv(t)
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"NoMatrix", []string{"-p", "1"}, errNoMatrix},
		{"NoVector", []string{"-m", "1"}, errNoVector},
		{"Ragged", []string{"-m", "1,0;1", "-p", "1,0"}, matrix.ErrDimensionMismatch},
		{"NonSquare", []string{"-m", "0.5,0.5", "-p", "1"}, markov.ErrDimensionMismatch},
		{"VectorLength", []string{"-m", ergodicFlag, "-p", "1,0"}, markov.ErrDimensionMismatch},
		{"NotStochastic", []string{"-m", "0.5,0.2;0,1", "-p", "1,0", "--stochastic"}, markov.ErrNotStochastic},
		{"BadNorm", []string{"-m", "1", "-p", "1", "--norm", "l7"}, config.ErrInvalidConfig},
		{"BadTolerance", []string{"-m", "1", "-p", "1", "--tol", "-1"}, config.ErrInvalidConfig},
		{"ZeroMaxIter", []string{"-m", "1", "-p", "1", "--max-iter", "0"}, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"markov"}, tc.args...)...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestMarkov_ParseErrors(t *testing.T) {
	clearEnv(t)
	for _, args := range [][]string{
		{"-m", "1,x", "-p", "1,0"},
		{"-m", "1", "-p", ""},
		{"-m", "1;;", "-p", "1"},
	} {
		_, _, err := run(t, append([]string{"markov"}, args...)...)
		require.Error(t, err, "args %v", args)
	}
}

func TestParseMatrix(t *testing.T) {
	rows, err := parseMatrix(" 1, 0 ; 0.5,0.5 ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0.5, 0.5}}, rows)

	v, err := parseVector("0.25,0.75")
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.75}, v)

	require.Equal(t, "[0.250000 0.750000]", formatVector(v))
}
