package vdf

import (
	"context"

	"github.com/verifiabledelay/vdf/big"
)

// ProgressFunc receives the completion percentage of a running delay
// computation, in the range 0 to 100 inclusive. It is invoked synchronously
// at chunk boundaries and must return before the computation resumes. A
// non-nil return value is logged and otherwise ignored: reporting failures
// never abort an in-flight computation.
type ProgressFunc func(percent int) error

// Evaluator performs the sequential squaring loop of the delay function.
type Evaluator struct {
	group     *Group
	chunkSize uint64
}

// NewEvaluator returns an evaluator squaring under the given group. A zero
// chunkSize falls back to the default.
func NewEvaluator(group *Group, chunkSize uint64) *Evaluator {
	if chunkSize == 0 {
		chunkSize = DefaultParameters.ChunkSize
	}
	return &Evaluator{group: group, chunkSize: chunkSize}
}

// Evaluate computes x^(2^t) mod N by t sequential modular squarings. Each
// squaring depends on the previous result; this strict data dependency is
// what makes the computation a delay, and no shortcut through the group
// structure is possible without knowing the factorization of N.
//
// The loop is partitioned into chunks. After each completed chunk the
// percentage of completed chunks is reported (monotonically non-decreasing),
// and the context is polled so that cancellation takes effect between chunks,
// never mid-squaring. After the remainder a final 100 is always reported.
//
// The caller is responsible for range-validating t.
func (e *Evaluator) Evaluate(ctx context.Context, x *big.Int, t uint64, report ProgressFunc) (*big.Int, error) {
	y := new(big.Int).Set(x)

	chunks := t / e.chunkSize
	remainder := t % e.chunkSize

	for i := uint64(0); i < chunks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for j := uint64(0); j < e.chunkSize; j++ {
			y.Mul(y, y).Mod(y, e.group.n)
		}
		e.reportProgress(report, int((i+1)*100/chunks))
	}

	for j := uint64(0); j < remainder; j++ {
		y.Mul(y, y).Mod(y, e.group.n)
	}

	e.reportProgress(report, 100)
	return y, nil
}

func (e *Evaluator) reportProgress(report ProgressFunc, percent int) {
	if report == nil {
		return
	}
	if err := report(percent); err != nil {
		Logger.WithError(err).Warn("progress report failed")
	}
}
