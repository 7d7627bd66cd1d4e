package markov_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/helloworld/markov"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	o := markov.NewOptions()
	require.Equal(t, markov.DefaultTolerance, o.Tolerance())
	require.Equal(t, markov.DefaultMaxIterations, o.MaxIterations())
	require.Equal(t, markov.NormMax, o.Norm())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := markov.NewOptions(
		markov.WithTolerance(1e-6),
		markov.WithExactEquality(),
		markov.WithMaxIterations(10),
		markov.WithMaxIterations(20),
		markov.WithNorm(markov.NormL1),
		nil, // ignored
	)
	require.Equal(t, 0.0, o.Tolerance())
	require.Equal(t, 20, o.MaxIterations())
	require.Equal(t, markov.NormL1, o.Norm())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { markov.WithTolerance(-1) })
	require.Panics(t, func() { markov.WithTolerance(math.NaN()) })
	require.Panics(t, func() { markov.WithTolerance(math.Inf(1)) })
	require.Panics(t, func() { markov.WithMaxIterations(0) })
	require.Panics(t, func() { markov.WithNorm(markov.Norm(7)) })
	require.Panics(t, func() { markov.WithStochasticCheck(-0.1) })
}

func TestParseNorm(t *testing.T) {
	tests := []struct {
		in      string
		want    markov.Norm
		wantErr bool
	}{
		{"max", markov.NormMax, false},
		{"inf", markov.NormMax, false},
		{"", markov.NormMax, false},
		{"l1", markov.NormL1, false},
		{"l2", markov.NormMax, true},
	}
	for _, tc := range tests {
		got, err := markov.ParseNorm(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
		require.Equal(t, got, mustParse(t, got.String()))
	}
	require.Equal(t, "Norm(7)", markov.Norm(7).String())
}

func mustParse(t *testing.T, s string) markov.Norm {
	t.Helper()
	n, err := markov.ParseNorm(s)
	require.NoError(t, err)

	return n
}
