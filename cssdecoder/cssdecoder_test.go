package cssdecoder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/qldpcsim/bitvec"
	"github.com/katalvlaran/qldpcsim/bpdecoder"
	"github.com/katalvlaran/qldpcsim/csscode"
	"github.com/katalvlaran/qldpcsim/cssdecoder"
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

func zeroPattern(t *testing.T, n int) *csscode.ErrorPattern {
	t.Helper()
	e, err := csscode.ZeroErrorPattern(n)
	require.NoError(t, err)

	return e
}

func TestShorCodeZeroSyndromeDecodesZero(t *testing.T) {
	code := shorCode(t)
	dec, err := cssdecoder.New(code, 0.05, 0.01, 0.01, bpdecoder.NewConfig(
		bpdecoder.WithMaxIter(10),
	), nil, nil)
	require.NoError(t, err)

	e := zeroPattern(t, code.N())
	syndrome, err := code.ComputeSyndrome(e)
	require.NoError(t, err)

	res, err := dec.Decode(context.Background(), syndrome)
	require.NoError(t, err)
	require.True(t, res.ConvergedX)
	require.True(t, res.ConvergedZ)
	require.True(t, res.Pattern.Equal(e))
}

func TestShorCodeSingleXErrorDecodedCorrectly(t *testing.T) {
	code := shorCode(t)
	dec, err := cssdecoder.New(code, 0.05, 0.01, 0.01, bpdecoder.NewConfig(
		bpdecoder.WithMaxIter(20),
	), nil, nil)
	require.NoError(t, err)

	x, err := bitvec.New(code.N())
	require.NoError(t, err)
	require.NoError(t, x.Set(0, true))
	z, err := bitvec.New(code.N())
	require.NoError(t, err)
	e, err := csscode.NewErrorPattern(x, z)
	require.NoError(t, err)

	syndrome, err := code.ComputeSyndrome(e)
	require.NoError(t, err)

	res, err := dec.Decode(context.Background(), syndrome)
	require.NoError(t, err)
	require.True(t, res.ConvergedX)
	require.True(t, res.ConvergedZ)
	require.True(t, res.Pattern.Equal(e))
}

func TestNewRejectsInvalidRate(t *testing.T) {
	code := shorCode(t)
	_, err := cssdecoder.New(code, -0.1, 0.01, 0.01, bpdecoder.NewConfig(), nil, nil)
	require.ErrorIs(t, err, cssdecoder.ErrInvalidRate)
}
