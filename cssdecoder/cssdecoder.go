package cssdecoder

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/qldpcsim/bpdecoder"
	"github.com/katalvlaran/qldpcsim/csscode"
)

// CssBpDecoder decodes the combined syndrome of a CssCode by running two
// independent BpDecoders, one over H_Z (recovering the X-error estimate)
// and one over H_X (recovering the Z-error estimate).
type CssBpDecoder struct {
	decoderZ *bpdecoder.Decoder // built on H_Z; Decode(s_Z) estimates x_bits
	decoderX *bpdecoder.Decoder // built on H_X; Decode(s_X) estimates z_bits
}

// New builds a CssBpDecoder for code, given the channel's marginal
// per-qubit error rates (uniform across qubits) pX, pY, pZ. cfg is shared
// by both underlying decoders. rngZ and rngX are each passed through to
// the corresponding decoder's New (required only when cfg.RandomSerial is
// set under the Serial schedule) and must be distinct instances, since
// the two decoders may run concurrently.
func New(code *csscode.CssCode, pX, pY, pZ float64, cfg bpdecoder.Config, rngZ, rngX *rand.Rand) (*CssBpDecoder, error) {
	if pX < 0 || pX > 1 || pY < 0 || pY > 1 || pZ < 0 || pZ > 1 {
		return nil, fmt.Errorf("New: %w", ErrInvalidRate)
	}

	n := code.N()
	probForDecoderZ := make([]float64, n) // X-error prior, used by decoder over H_Z
	probForDecoderX := make([]float64, n) // Z-error prior, used by decoder over H_X
	for j := 0; j < n; j++ {
		probForDecoderZ[j] = pX + pY
		probForDecoderX[j] = pZ + pY
	}

	decoderZ, err := bpdecoder.New(code.HZ(), probForDecoderZ, cfg, rngZ)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	decoderX, err := bpdecoder.New(code.HX(), probForDecoderX, cfg, rngX)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &CssBpDecoder{decoderZ: decoderZ, decoderX: decoderX}, nil
}

// Result is the outcome of a single CssBpDecoder.Decode call.
type Result struct {
	Pattern     *csscode.ErrorPattern
	ConvergedX  bool // whether the H_Z decoder (x_bits estimate) converged
	ConvergedZ  bool // whether the H_X decoder (z_bits estimate) converged
	IterationsX int
	IterationsZ int
}

// Decode recovers an ErrorPattern estimate from syndrome, running the two
// underlying decoders concurrently since neither shares state with the
// other.
func (d *CssBpDecoder) Decode(ctx context.Context, syndrome *csscode.Syndrome) (*Result, error) {
	var (
		wg         sync.WaitGroup
		resZ, resX *bpdecoder.Result
		errZ, errX error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		resZ, errZ = d.decoderZ.Decode(ctx, syndrome.SZ)
	}()
	go func() {
		defer wg.Done()
		resX, errX = d.decoderX.Decode(ctx, syndrome.SX)
	}()
	wg.Wait()

	if errZ != nil {
		return nil, fmt.Errorf("Decode: %w", errZ)
	}
	if errX != nil {
		return nil, fmt.Errorf("Decode: %w", errX)
	}

	pattern, err := csscode.NewErrorPattern(resZ.Decision, resX.Decision)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return &Result{
		Pattern:     pattern,
		ConvergedX:  resZ.Converged,
		ConvergedZ:  resX.Converged,
		IterationsX: resZ.Iterations,
		IterationsZ: resX.Iterations,
	}, nil
}
