package vdf

import (
	"github.com/go-errors/errors"

	"github.com/verifiabledelay/vdf/big"
	"github.com/verifiabledelay/vdf/internal/common"
)

// DefaultModulusHex is the fixed 2048-bit group modulus, a composite of
// unknown factorization produced by a trusted setup. Interoperating
// implementations must use a bit-identical modulus.
const DefaultModulusHex = "C7970CEEDCC3B0754490201A7AA613CD73911081C790F5F1A8726F463550BB5B7FF0DB8E1EA1189EC72F93D1650011BD721AEEACC2ACDE32A04107F0648C2813A31F5B0B7765FF8B44B4B6FFC93384B646EB09C7CF5E8592D40EA33C80039F35B4F14A04B51F7BFD781BE4D1673164BA8EB991C2C4D730BBBE35F592BDEF524AF7E8DAEFD26C66FC02C479AF89D64D373F442709439DE66CEB955F3EA37D5159F6135809F85334B5CB1813ADDC80CD05609F10AC6A95AD65872C909525BDAD32BC729592642920F24C61DC5B3C3B7923E56B16A4D9D373D8721F24A3FC0F1B3131F55615172866BCCC30F95054C824E733A5EB6817F7BC16399D48C6361CC7E5"

// Group performs the modular arithmetic of a hidden-order group Z/NZ. The
// modulus is set at construction and never mutated afterwards, so a Group may
// be shared freely across concurrent compute and verify calls.
type Group struct {
	n *big.Int
}

// NewGroup validates the modulus and returns a group operating under it. The
// modulus must be odd and its bit length must exceed the challenge digest
// width, so that hash-derived challenge values are always group elements
// without reduction.
func NewGroup(n *big.Int) (*Group, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, errors.New("group modulus missing or not positive")
	}
	if n.Bit(0) == 0 {
		return nil, errors.New("group modulus must be odd")
	}
	if n.BitLen() <= common.DigestBits {
		return nil, errors.Errorf(
			"group modulus of %d bits does not exceed the %d bit challenge digest",
			n.BitLen(), common.DigestBits)
	}
	return &Group{n: new(big.Int).Set(n)}, nil
}

// N returns a copy of the group modulus.
func (g *Group) N() *big.Int {
	return new(big.Int).Set(g.n)
}

// Exp returns x^y mod N.
func (g *Group) Exp(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, g.n)
}

// Mul returns x*y mod N.
func (g *Group) Mul(x, y *big.Int) *big.Int {
	z := new(big.Int).Mul(x, y)
	return z.Mod(z, g.n)
}

var defaultGroup *Group

// The scheme cannot operate without a valid group, so a broken modulus
// constant is fatal at startup rather than at first use.
func init() {
	n, ok := new(big.Int).SetString(DefaultModulusHex, 16)
	if !ok {
		panic("vdf: failed to parse default modulus")
	}
	g, err := NewGroup(n)
	if err != nil {
		panic("vdf: invalid default modulus: " + err.Error())
	}
	defaultGroup = g
}

// DefaultGroup returns the group under the fixed default modulus.
func DefaultGroup() *Group {
	return defaultGroup
}
