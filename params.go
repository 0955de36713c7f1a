package vdf

// Parameters holds the policy knobs of the scheme. All interoperating
// deployments must agree on the iteration bounds and the challenge prime
// size; the remaining fields only affect local cost.
type Parameters struct {
	// MinIterations and MaxIterations bound the accepted iteration counts,
	// for Compute and Verify alike.
	MinIterations uint64
	MaxIterations uint64

	// ChunkSize is the number of squarings performed between progress
	// reports (and cancellation checks).
	ChunkSize uint64

	// ChallengePrimeBits is the exact bit length of the challenge prime l.
	ChallengePrimeBits uint

	// GeneratePrimeRounds is the Miller-Rabin round count used when sampling
	// l. The false-positive probability is at most 4^-rounds; the default of
	// 20 bounds it by 2^-40. This prime anchors proof soundness, so it is
	// tested much harder than at verification time.
	GeneratePrimeRounds int

	// VerifyPrimeRounds is the Miller-Rabin round count used when validating
	// a proof's l. The default of 5 accepts a composite l with probability
	// at most 2^-10, trading soundness for verification speed: an l that is
	// merely probably prime still binds the prover to the claimed work with
	// overwhelming probability.
	VerifyPrimeRounds int

	// MinProofPrimeBits is the minimum accepted bit length of a proof's l.
	MinProofPrimeBits int

	// MaxPrimeAttempts bounds the candidate budget of the prime sampler.
	MaxPrimeAttempts int

	// IterationsPerSecond is the squaring rate assumed by
	// EstimateIterations. It varies significantly by hardware.
	IterationsPerSecond uint64
}

// DefaultParameters are the parameters in use by all currently deployed
// instances of the scheme.
var DefaultParameters = Parameters{
	MinIterations:       1000,
	MaxIterations:       10000000,
	ChunkSize:           1000,
	ChallengePrimeBits:  128,
	GeneratePrimeRounds: 20,
	VerifyPrimeRounds:   5,
	MinProofPrimeBits:   120,
	MaxPrimeAttempts:    1000,
	IterationsPerSecond: 10000000,
}

func (p *Parameters) checkIterations(iterations uint64) error {
	if iterations < p.MinIterations || iterations > p.MaxIterations {
		return ErrInvalidIterations
	}
	return nil
}

// EstimateIterations returns an iteration count that should take roughly the
// given number of seconds to compute, clamped to the allowed range. This is a
// convenience helper, not a correctness guarantee.
func (p *Parameters) EstimateIterations(seconds float64) uint64 {
	if seconds <= 0 {
		return p.MinIterations
	}
	est := seconds * float64(p.IterationsPerSecond)
	if est >= float64(p.MaxIterations) {
		return p.MaxIterations
	}
	if est < float64(p.MinIterations) {
		return p.MinIterations
	}
	return uint64(est)
}

// EstimateIterations is EstimateIterations on the default parameters.
func EstimateIterations(seconds float64) uint64 {
	return DefaultParameters.EstimateIterations(seconds)
}
