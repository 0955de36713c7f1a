package common

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"

	"github.com/go-errors/errors"
)

// CPRNG is a cryptographically secure pseudo-random number generator.
// Implemented with AES in counter mode with the seed as key.
//
// Instances are call-local: candidate and witness sampling must never share
// mutable randomness state across concurrent compute or verify calls, so a
// fresh CPRNG is created for each call instead of keeping a process-global
// source.
type CPRNG struct {
	block   cipher.Block
	counter uint64
}

func NewCPRNG(seed *[32]byte) (*CPRNG, error) {
	c, err := aes.NewCipher(seed[:])
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return &CPRNG{
		block:   c,
		counter: 0,
	}, nil
}

// NewSessionRandom returns a CPRNG seeded from crypto/rand, for use within a
// single compute or verify call.
func NewSessionRandom() (*CPRNG, error) {
	var seed [32]byte
	if _, err := rand.Reader.Read(seed[:]); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return NewCPRNG(&seed)
}

func (c *CPRNG) Read(buf []byte) (n int, err error) {
	var pt, ct [16]byte
	n = len(buf)
	if n == 0 {
		return
	}

	iv := c.counter
	c.counter += uint64((len(buf)-1)/16 + 1)
	for {
		binary.LittleEndian.PutUint64(pt[:], iv)
		iv++

		// Still 16 bytes to go?  Then encrypt directly into buf.
		if len(buf) >= 16 {
			c.block.Encrypt(buf, pt[:])
			buf = buf[16:]
			continue
		}
		if len(buf) == 0 {
			break
		}

		// Otherwise, encrypt into ct and copy into buf.
		c.block.Encrypt(ct[:], pt[:])
		copy(buf, ct[:len(buf)])
		break
	}
	return
}
