package intake

import (
	"context"
	"fmt"

	"github.com/kurochkinivan/notice_pipeline/internal/domain"
)

// Rung is one step of a compression ladder.
type Rung struct {
	Quality int
	Scale   float64
}

var RasterLadder = []Rung{
	{Quality: 70, Scale: 1.0},
	{Quality: 60, Scale: 0.95},
	{Quality: 50, Scale: 0.90},
	{Quality: 40, Scale: 0.85},
}

var ImageLadder = QualityLadder(90, 10, 10)

// QualityLadder counts quality down from start by step while it stays
// strictly above floor.
func QualityLadder(start, step, floor int) []Rung {
	var rungs []Rung
	for q := start; q > floor; q -= step {
		rungs = append(rungs, Rung{Quality: q, Scale: 1.0})
	}

	return rungs
}

type ladderResult struct {
	data     []byte
	rung     int // -1 when the seed was never beaten
	met      bool
	attempts []domain.CompressionAttempt
}

// descend tries the rungs in order and stops at the first output within
// budget. The smallest output seen, seed included, is kept either way. A
// failing rung is recorded and skipped; if every rung fails the last error
// is returned.
func descend(
	ctx context.Context,
	method domain.CompressionMethod,
	rungs []Rung,
	budget int64,
	seed []byte,
	try func(context.Context, Rung) ([]byte, error),
) (*ladderResult, error) {
	res := &ladderResult{
		data: seed,
		rung: -1,
		met:  int64(len(seed)) <= budget,
	}
	if res.met {
		return res, nil
	}

	var lastErr error
	failed := 0

	for i, rung := range rungs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt := domain.CompressionAttempt{
			Method:  method,
			Quality: rung.Quality,
			Scale:   rung.Scale,
		}

		out, err := try(ctx, rung)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}

			attempt.Error = err.Error()
			res.attempts = append(res.attempts, attempt)
			lastErr = err
			failed++
			continue
		}

		size := int64(len(out))
		attempt.ResultSizeBytes = size
		res.attempts = append(res.attempts, attempt)

		if size < int64(len(res.data)) {
			res.data = out
			res.rung = i
		}

		if size <= budget {
			res.data = out
			res.rung = i
			res.met = true
			return res, nil
		}
	}

	if len(rungs) > 0 && failed == len(rungs) {
		return nil, fmt.Errorf("all %d compression attempts failed, last: %w", failed, lastErr)
	}

	return res, nil
}
