// Package big contains a mostly API-compatible "math/big".Int that marshals to
// and from the base64 transport encoding used for proof fields.
package big

import (
	cryptorand "crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"

	"github.com/go-errors/errors"
)

// Int is an API-compatible "math/big".Int that marshals to and from base64
// over its minimal big-endian byte representation. Only supports non-negative
// integers.
type Int big.Int

// ErrInvalidEncoding is returned when decoding an empty or otherwise
// malformed transport payload.
var ErrInvalidEncoding = errors.New("invalid big integer encoding")

// MarshalBinary implements encoding.BinaryMarshaler, returning the minimal
// big-endian byte representation without superfluous leading zero bytes.
// The value zero encodes as a single zero byte.
func (i *Int) MarshalBinary() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("marshaling negative integers is not supported")
	}
	bts := i.Bytes()
	if len(bts) == 0 {
		bts = []byte{0}
	}
	return bts, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Empty payloads are
// rejected with ErrInvalidEncoding.
func (i *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return ErrInvalidEncoding
	}
	i.SetBytes(data)
	return nil
}

// MarshalText implements encoding.TextMarshaler, returning the standard
// base64 encoding of MarshalBinary.
func (i *Int) MarshalText() ([]byte, error) {
	bts, err := i.MarshalBinary()
	if err != nil {
		return nil, err
	}
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(bts)))
	base64.StdEncoding.Encode(enc, bts)
	return enc, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both broken base64 and
// empty decoded payloads are rejected with ErrInvalidEncoding.
func (i *Int) UnmarshalText(text []byte) error {
	bts, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil || len(bts) == 0 {
		return ErrInvalidEncoding
	}
	i.SetBytes(bts)
	return nil
}

// RandInt wraps "crypto/rand".Int:
// returns a uniform random value in [0, max). It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	i, err := cryptorand.Int(rnd, max.Go())
	return Convert(i), err
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Convert to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API
// We are liberal with using the conversion functions above; these are inlined by the compiler.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune)  { i.Go().Format(s, ch) }
func (i *Int) Bit(j int) uint               { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte                { return i.Go().Bytes() }
func (i *Int) BitLen() int                  { return i.Go().BitLen() }
func (i *Int) Uint64() uint64               { return i.Go().Uint64() }
func (i *Int) Sign() int                    { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int               { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool     { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string               { return i.Go().String() }
func (i *Int) Text(base int) string         { return i.Go().Text(base) }
func (i *Int) SetInt64(x int64) *Int        { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int      { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int              { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Add(x, y *Int) *Int           { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int           { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int           { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Div(x, y *Int) *Int           { return Convert(i.Go().Div(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int           { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int     { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int      { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int      { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Exp(x, y, m *Int) *Int {
	return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
