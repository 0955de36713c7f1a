package common

import (
	"crypto/sha256"

	"github.com/verifiabledelay/vdf/big"
)

// DigestBits is the bit width of the challenge digest. The group modulus must
// be strictly larger than this so that challenge values never need modular
// reduction.
const DigestBits = 256

// IntHashSha256 is a utility function to compute the sha256 hash over a byte
// array and return this hash as a big.Int. No modular reduction is applied;
// the builder and the verifier derive challenge values identically through
// this function.
func IntHashSha256(input []byte) *big.Int {
	h := sha256.New()
	h.Write(input)
	return new(big.Int).SetBytes(h.Sum(nil))
}
