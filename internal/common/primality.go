package common

import (
	"io"

	"github.com/verifiabledelay/vdf/big"
)

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var (
	bigONE   = big.NewInt(1)
	bigTWO   = big.NewInt(2)
	bigTHREE = big.NewInt(3)
)

// IsProbablePrime reports whether n is prime using rounds iterations of the
// Miller-Rabin test with bases sampled from rand. The guarantee is
// probabilistic, not absolute: a composite n is declared prime with
// probability at most 4^-rounds. An error is only returned when reading from
// rand fails.
func IsProbablePrime(rand io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(bigONE) <= 0 {
		return false, nil
	}
	if n.Cmp(bigTWO) == 0 || n.Cmp(bigTHREE) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Factor n-1 as 2^r * d with d odd.
	nMinusOne := new(big.Int).Sub(n, bigONE)
	d := new(big.Int).Set(nMinusOne)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	span := new(big.Int).Sub(n, bigTHREE) // bases are drawn from [2, n-2]
	x := new(big.Int)

NextWitness:
	for i := 0; i < rounds; i++ {
		a, err := big.RandInt(rand, span)
		if err != nil {
			return false, err
		}
		a.Add(a, bigTWO)

		x.Exp(a, d, n)
		if x.Cmp(bigONE) == 0 || x.Cmp(nMinusOne) == 0 {
			continue NextWitness
		}
		for j := 0; j < r-1; j++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				continue NextWitness
			}
		}
		// This witness proves n composite; no point in trying the rest.
		return false, nil
	}
	return true, nil
}
