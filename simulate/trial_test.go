package simulate_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qldpcsim/bpdecoder"
	"github.com/katalvlaran/qldpcsim/csscode"
	"github.com/katalvlaran/qldpcsim/cssdecoder"
	"github.com/katalvlaran/qldpcsim/errchannel"
	"github.com/katalvlaran/qldpcsim/simulate"
	"github.com/katalvlaran/qldpcsim/sparsebin"
	"github.com/stretchr/testify/require"
)

func shorCode(t *testing.T) *csscode.CssCode {
	t.Helper()
	hx, err := sparsebin.FromRowAdj(2, 9, [][]int{
		{0, 1, 2, 3, 4, 5},
		{3, 4, 5, 6, 7, 8},
	})
	require.NoError(t, err)
	hz, err := sparsebin.FromRowAdj(6, 9, [][]int{
		{0, 1}, {1, 2}, {3, 4}, {4, 5}, {6, 7}, {7, 8},
	})
	require.NoError(t, err)
	code, err := csscode.FromParityCheckMatrices(hx, hz)
	require.NoError(t, err)

	return code
}

func TestTrialLowRateBitFlipSucceeds(t *testing.T) {
	code := shorCode(t)
	channel, err := errchannel.NewBitFlip(code.N(), 0.02)
	require.NoError(t, err)

	dec, err := cssdecoder.New(code, 0.02, 0, 0, bpdecoder.NewConfig(
		bpdecoder.WithMaxIter(20),
	), nil, nil)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		outcome, err := simulate.Trial(context.Background(), code, channel, dec, rng)
		require.NoError(t, err)
		require.True(t, outcome.Converged)
		require.True(t, outcome.Success)
	}
}
