package vdf

import (
	"github.com/verifiabledelay/vdf/internal/common"
)

// Verify checks a proof against the input it claims to have been computed
// from. The boolean is the protocol outcome: a well-formed proof that fails
// the verification equation yields (false, nil), which is distinct from the
// error cases for malformed input. Verification never runs the delay loop.
func (v *VDF) Verify(input []byte, proof *Proof) (bool, error) {
	if proof == nil {
		return false, ErrDecode
	}
	if err := v.params.checkIterations(proof.Iterations); err != nil {
		return false, err
	}
	if proof.Y == nil || proof.Pi == nil || proof.L == nil || proof.R == nil {
		return false, ErrDecode
	}

	// The challenge prime is validated on every call; an l that is too short
	// or composite would let a prover cheat the equation below.
	if proof.L.BitLen() < v.params.MinProofPrimeBits {
		return false, ErrInvalidProofPrime
	}
	rnd, err := common.NewSessionRandom()
	if err != nil {
		return false, err
	}
	ok, err := common.IsProbablePrime(rnd, proof.L, v.params.VerifyPrimeRounds)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrInvalidProofPrime
	}

	// Recompute the challenge exactly as the builder did and check
	// y == pi^l * x^r mod N.
	x := common.IntHashSha256(input)
	rhs := v.group.Mul(v.group.Exp(proof.Pi, proof.L), v.group.Exp(x, proof.R))

	return proof.Y.Cmp(rhs) == 0, nil
}
