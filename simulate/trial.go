package simulate

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qldpcsim/csscode"
	"github.com/katalvlaran/qldpcsim/cssdecoder"
	"github.com/katalvlaran/qldpcsim/errchannel"
)

// Outcome is the result of a single decoding trial.
type Outcome struct {
	Truth     *csscode.ErrorPattern
	Decoded   *csscode.ErrorPattern
	Converged bool
	Success   bool // Decoded.Equal(Truth)
}

// Trial draws one error pattern from channel, computes its syndrome under
// code, decodes it with dec, and reports whether the decoded pattern
// matches the sampled truth exactly: channel sample, CssCode.ComputeSyndrome,
// CssBpDecoder.Decode, comparison with truth.
func Trial(ctx context.Context, code *csscode.CssCode, channel errchannel.Channel, dec *cssdecoder.CssBpDecoder, rng *rand.Rand) (*Outcome, error) {
	truth, err := channel.Sample(rng)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	syndrome, err := code.ComputeSyndrome(truth)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	res, err := dec.Decode(ctx, syndrome)
	if err != nil {
		return nil, fmt.Errorf("Trial: %w", err)
	}

	return &Outcome{
		Truth:     truth,
		Decoded:   res.Pattern,
		Converged: res.ConvergedX && res.ConvergedZ,
		Success:   res.Pattern.Equal(truth),
	}, nil
}
