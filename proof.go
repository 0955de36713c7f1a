package vdf

import (
	"crypto/sha256"

	"github.com/fxamacker/cbor/v2"
	"github.com/multiformats/go-multihash"

	"github.com/verifiabledelay/vdf/big"
)

// Proof is the evidence that the delay function was evaluated for Iterations
// sequential squarings on some input. Proofs are immutable value objects:
// created by Compute, consumed by Verify or an encoding layer, never mutated.
//
// In JSON the big integer fields marshal as standard base64 over their
// minimal big-endian byte representation; this encoding must be reproduced
// bit-exactly by interoperating implementations.
type Proof struct {
	Y          *big.Int `json:"y"`          // the result x^(2^t) mod N
	Pi         *big.Int `json:"pi"`         // the Wesolowski witness
	L          *big.Int `json:"l"`          // the challenge prime
	R          *big.Int `json:"r"`          // 2^t mod l
	Iterations uint64   `json:"iterations"` // the iteration count t
}

// proofEnvelope is the CBOR form of a proof, with the big integer fields as
// raw transport bytes.
type proofEnvelope struct {
	Y          []byte `cbor:"1,keyasint"`
	Pi         []byte `cbor:"2,keyasint"`
	L          []byte `cbor:"3,keyasint"`
	R          []byte `cbor:"4,keyasint"`
	Iterations uint64 `cbor:"5,keyasint"`
}

var (
	// Core Deterministic Encoding, so that equal proofs always produce
	// identical bytes and can serve as storage keys.
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	if cborEncMode, err = cbor.CoreDetEncOptions().EncMode(); err != nil {
		panic(err)
	}
	if cborDecMode, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		panic(err)
	}
}

// MarshalCBOR encodes the proof with CBOR Core Deterministic Encoding.
func (p *Proof) MarshalCBOR() ([]byte, error) {
	var (
		env proofEnvelope
		err error
	)
	if env.Y, err = p.Y.MarshalBinary(); err != nil {
		return nil, err
	}
	if env.Pi, err = p.Pi.MarshalBinary(); err != nil {
		return nil, err
	}
	if env.L, err = p.L.MarshalBinary(); err != nil {
		return nil, err
	}
	if env.R, err = p.R.MarshalBinary(); err != nil {
		return nil, err
	}
	env.Iterations = p.Iterations
	return cborEncMode.Marshal(&env)
}

// UnmarshalCBOR decodes a proof, rejecting empty big integer payloads with
// ErrDecode.
func (p *Proof) UnmarshalCBOR(data []byte) error {
	var env proofEnvelope
	if err := cborDecMode.Unmarshal(data, &env); err != nil {
		return ErrDecode
	}

	proof := Proof{
		Y:          new(big.Int),
		Pi:         new(big.Int),
		L:          new(big.Int),
		R:          new(big.Int),
		Iterations: env.Iterations,
	}
	if err := proof.Y.UnmarshalBinary(env.Y); err != nil {
		return err
	}
	if err := proof.Pi.UnmarshalBinary(env.Pi); err != nil {
		return err
	}
	if err := proof.L.UnmarshalBinary(env.L); err != nil {
		return err
	}
	if err := proof.R.UnmarshalBinary(env.R); err != nil {
		return err
	}

	*p = proof
	return nil
}

// Fingerprint returns a self-describing SHA2-256 multihash over the canonical
// CBOR encoding of the proof, suitable as a storage or deduplication key.
func (p *Proof) Fingerprint() (multihash.Multihash, error) {
	data, err := p.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(data)
	enc, err := multihash.Encode(digest[:], multihash.SHA2_256)
	if err != nil {
		return nil, err
	}
	return multihash.Multihash(enc), nil
}
