package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/helloworld/markov"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg.Tolerance)
	require.Equal(t, markov.DefaultTolerance, *cfg.Tolerance)
	require.Equal(t, markov.DefaultMaxIterations, cfg.MaxIterations)
	require.Equal(t, "max", cfg.Norm)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvTolerance:     "0",
		EnvMaxIterations: " 25 ",
		EnvNorm:          "l1",
		EnvVerbose:       "true",
	}))
	require.NoError(t, err)
	require.Equal(t, 0.0, *cfg.Tolerance)
	require.Equal(t, 25, cfg.MaxIterations)
	require.Equal(t, "l1", cfg.Norm)
	require.True(t, cfg.Verbose)

	require.Error(t, DefaultConfig().ApplyEnv(envMap(map[string]string{EnvTolerance: "tiny"})))
	require.Error(t, DefaultConfig().ApplyEnv(envMap(map[string]string{EnvMaxIterations: "1.5"})))
	require.Error(t, DefaultConfig().ApplyEnv(envMap(map[string]string{EnvVerbose: "maybe"})))
}

func TestLoad_YAMLOverridesEnv(t *testing.T) {
	t.Setenv(EnvMaxIterations, "25")
	t.Setenv(EnvNorm, "l1")
	path := writeFile(t, "chain.yaml", `
tolerance: 1e-9
max_iterations: 500
stochastic_check: true
matrix:
  - [0.2, 0.6, 0.2]
  - [0.1, 0.5, 0.4]
  - [0.3, 0.3, 0.4]
vector: [1, 0, 0]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1e-9, *cfg.Tolerance)
	require.Equal(t, 500, cfg.MaxIterations) // file beats env
	require.Equal(t, "l1", cfg.Norm)         // env beats default
	require.True(t, cfg.StochasticCheck)
	require.Len(t, cfg.Matrix, 3)
	require.Equal(t, []float64{1, 0, 0}, cfg.Vector)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "tolerance: [1, 2\n"))
	require.Error(t, err)

	_, err = Load(writeFile(t, "neg.yaml", "tolerance: -1\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeFile(t, "norm.yaml", "norm: l7\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))

	t.Setenv(EnvNorm, "max") // real env wins over the file
	path := writeFile(t, "test.env", EnvMaxIterations+"=77\n"+EnvNorm+"=l1\n")
	t.Cleanup(func() { os.Unsetenv(EnvMaxIterations) })

	require.NoError(t, LoadDotEnv(path))
	require.Equal(t, "77", os.Getenv(EnvMaxIterations))
	require.Equal(t, "max", os.Getenv(EnvNorm))
}

func TestSolverOptions(t *testing.T) {
	tol := 0.0
	cfg := &Config{Tolerance: &tol, MaxIterations: 30, Norm: "l1", StochasticCheck: true}

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	o := markov.NewOptions(opts...)
	require.Equal(t, 0.0, o.Tolerance())
	require.Equal(t, 30, o.MaxIterations())
	require.Equal(t, markov.NormL1, o.Norm())

	// Zero iterations keeps the default cap.
	opts, err = (&Config{}).SolverOptions()
	require.NoError(t, err)
	require.Equal(t, markov.DefaultMaxIterations, markov.NewOptions(opts...).MaxIterations())

	_, err = (&Config{MaxIterations: -3}).SolverOptions()
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Contains(t, err.Error(), "must be >= 0")
}

func TestValidate_MaxIterationsZeroKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIterations = 0
	require.NoError(t, cfg.Validate())

	opts, err := cfg.SolverOptions()
	require.NoError(t, err)
	require.Equal(t, markov.DefaultMaxIterations, markov.NewOptions(opts...).MaxIterations())
}
