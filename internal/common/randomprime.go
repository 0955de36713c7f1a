package common

import (
	"io"

	"github.com/go-errors/errors"

	"github.com/verifiabledelay/vdf/big"
)

// SmallPrimes is a list of small prime numbers that allows us to rapidly
// exclude some fraction of composite candidates when searching for a random
// prime. This list is truncated at the point where SmallPrimesProduct exceeds
// a uint64. It does not include two because we ensure that the candidates are
// odd by construction.
var SmallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

// SmallPrimesProduct is the product of the values in SmallPrimes and allows us
// to reduce a candidate prime by this number and then determine whether it's
// coprime with all the elements of SmallPrimes without further big.Int
// operations.
var SmallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// ErrPrimeAttemptsExhausted is returned when no probable prime was found
// within the attempt budget. The probability of this happening with a sane
// budget is astronomically small, but the caller may simply retry.
var ErrPrimeAttemptsExhausted = errors.New("prime generation attempts exhausted")

// RandomPrime returns a random probable prime of exactly bits length, tested
// with rounds iterations of Miller-Rabin. Candidates get their top bit set to
// fix the bit length exactly, and their bottom bit set to force oddness. At
// most maxAttempts candidates are tried.
func RandomPrime(rand io.Reader, bits uint, rounds, maxAttempts int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.New("randomPrime: prime size must be at least 2-bit")
	}

	b := bits % 8
	if b == 0 {
		b = 8
	}

	bytes := make([]byte, (bits+7)/8)
	p := new(big.Int)
	bigMod := new(big.Int)

NextCandidate:
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if _, err := io.ReadFull(rand, bytes); err != nil {
			return nil, errors.Wrap(err, 0)
		}

		// Clear bits in the first byte to make sure the candidate has a size <= bits,
		// then set the top bit so it has a size of exactly bits.
		bytes[0] &= uint8(int(1<<b) - 1)
		bytes[0] |= uint8(1 << (b - 1))

		// Make the value odd since an even number this large certainly isn't prime.
		bytes[len(bytes)-1] |= 1

		p.SetBytes(bytes)

		// Calculate the value mod the product of SmallPrimes. If it's a multiple of any of these
		// primes we discard this candidate. This check is much cheaper than the Miller-Rabin
		// rounds below.
		bigMod.Mod(p, SmallPrimesProduct)
		mod := bigMod.Uint64()
		for _, prime := range SmallPrimes {
			if mod%uint64(prime) == 0 && (bits > 6 || mod != uint64(prime)) {
				continue NextCandidate
			}
		}

		ok, err := IsProbablePrime(rand, p, rounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}

	return nil, ErrPrimeAttemptsExhausted
}
