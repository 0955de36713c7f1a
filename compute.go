package vdf

import (
	"context"

	"github.com/verifiabledelay/vdf/big"
	"github.com/verifiabledelay/vdf/internal/common"
)

var (
	bigONE = big.NewInt(1)
	bigTWO = big.NewInt(2)
)

// VDF binds a group and a parameter set into a proof builder and verifier.
// It holds no mutable state and may be shared across goroutines.
type VDF struct {
	group     *Group
	params    Parameters
	evaluator *Evaluator
}

// New returns a VDF over the given group. A nil params uses
// DefaultParameters.
func New(group *Group, params *Parameters) *VDF {
	if params == nil {
		params = &DefaultParameters
	}
	p := *params
	return &VDF{
		group:     group,
		params:    p,
		evaluator: NewEvaluator(group, p.ChunkSize),
	}
}

// NewDefault returns a VDF over the fixed default modulus with default
// parameters.
func NewDefault() *VDF {
	return New(DefaultGroup(), nil)
}

// Compute evaluates the delay function on input for the given number of
// iterations and returns a proof of the result. Progress is reported through
// report, which may be nil. Cancelling ctx terminates the computation cleanly
// at the next chunk boundary.
//
// The proof construction follows Wesolowski: with challenge x = hash(input)
// and a freshly sampled prime l, the result y = x^(2^t) and the witness
// pi = x^((2^t - r)/l) with r = 2^t mod l satisfy y = pi^l * x^r mod N, which
// the verifier can check without redoing the squarings.
func (v *VDF) Compute(ctx context.Context, input []byte, iterations uint64, report ProgressFunc) (*Proof, error) {
	if err := v.params.checkIterations(iterations); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	x := common.IntHashSha256(input)

	rnd, err := common.NewSessionRandom()
	if err != nil {
		return nil, err
	}
	l, err := common.RandomPrime(rnd, v.params.ChallengePrimeBits, v.params.GeneratePrimeRounds, v.params.MaxPrimeAttempts)
	if err != nil {
		return nil, err
	}

	// r = 2^t mod l via fast exponentiation, independent of the delay loop.
	r := new(big.Int).Exp(bigTWO, new(big.Int).SetUint64(iterations), l)

	y, err := v.evaluator.Evaluate(ctx, x, iterations, report)
	if err != nil {
		return nil, err
	}

	// The full-precision power 2^t is needed because the subtraction and
	// division below must be exact over the integers, not modulo N. The
	// division is exact since r = 2^t mod l.
	power := new(big.Int).Lsh(bigONE, uint(iterations))
	q := new(big.Int).Sub(power, r)
	q.Div(q, l)

	pi := v.group.Exp(x, q)

	return &Proof{
		Y:          y,
		Pi:         pi,
		L:          l,
		R:          r,
		Iterations: iterations,
	}, nil
}
