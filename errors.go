package vdf

import (
	"github.com/go-errors/errors"

	"github.com/verifiabledelay/vdf/big"
	"github.com/verifiabledelay/vdf/internal/common"
)

var (
	// ErrInvalidIterations is returned when the iteration count lies outside
	// [Parameters.MinIterations, Parameters.MaxIterations]. The bound is a
	// policy choice limiting proof cost, not a mathematical constraint, and
	// is enforced identically by Compute and Verify.
	ErrInvalidIterations = errors.New("iteration count outside allowed range")

	// ErrPrimeGenerationExhausted is returned when the challenge prime
	// sampler ran out of attempts. The caller may retry.
	ErrPrimeGenerationExhausted = common.ErrPrimeAttemptsExhausted

	// ErrDecode is returned for malformed transport encodings, including
	// empty byte payloads for any of the proof's big integer fields.
	ErrDecode = big.ErrInvalidEncoding

	// ErrInvalidProofPrime is returned when a proof's challenge prime fails
	// the minimum bit length or the primality check at verification time.
	ErrInvalidProofPrime = errors.New("invalid proof prime")
)
