package vdf

import (
	"context"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifiabledelay/vdf/big"
	"github.com/verifiabledelay/vdf/internal/common"
)

func TestComputeVerifyRoundtrip(t *testing.T) {
	v := NewDefault()

	proof, err := v.Compute(context.Background(), []byte("test"), 1000, nil)
	require.NoError(t, err)
	require.NotNil(t, proof)

	assert.EqualValues(t, 1000, proof.Iterations)
	assert.GreaterOrEqual(t, proof.L.BitLen(), 120)

	ok, err := v.Verify([]byte("test"), proof)
	require.NoError(t, err)
	assert.True(t, ok)

	// rejection on a different input is an outcome, not an error
	ok, err = v.Verify([]byte("not the input"), proof)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTamperedIterations(t *testing.T) {
	v := NewDefault()

	proof, err := v.Compute(context.Background(), []byte("test"), 1000, nil)
	require.NoError(t, err)

	tampered := *proof
	tampered.Iterations = 999
	_, err = v.Verify([]byte("test"), &tampered)
	require.ErrorIs(t, err, ErrInvalidIterations)
}

func TestIterationBounds(t *testing.T) {
	v := NewDefault()
	ctx := context.Background()

	_, err := v.Compute(ctx, []byte("x"), DefaultParameters.MinIterations-1, nil)
	require.ErrorIs(t, err, ErrInvalidIterations)

	_, err = v.Compute(ctx, []byte("x"), DefaultParameters.MaxIterations+1, nil)
	require.ErrorIs(t, err, ErrInvalidIterations)

	proof := &Proof{Iterations: DefaultParameters.MaxIterations + 1}
	_, err = v.Verify([]byte("x"), proof)
	require.ErrorIs(t, err, ErrInvalidIterations)
}

func TestProofAlgebra(t *testing.T) {
	v := NewDefault()

	proof, err := v.Compute(context.Background(), []byte("algebra"), 1000, nil)
	require.NoError(t, err)

	// 0 <= r < l
	assert.GreaterOrEqual(t, proof.R.Sign(), 0)
	assert.Equal(t, -1, proof.R.Cmp(proof.L))

	// l divides 2^t - r exactly
	power := new(big.Int).Lsh(big.NewInt(1), uint(proof.Iterations))
	diff := new(big.Int).Sub(power, proof.R)
	assert.Equal(t, 0, new(big.Int).Mod(diff, proof.L).Sign())

	// y equals the challenge raised to 2^t in one shot
	y := v.group.Exp(common.IntHashSha256([]byte("algebra")), power)
	assert.Equal(t, 0, proof.Y.Cmp(y))
}

func TestChallengeIndependence(t *testing.T) {
	v := NewDefault()
	ctx := context.Background()

	p1, err := v.Compute(ctx, []byte("same input"), 1000, nil)
	require.NoError(t, err)
	p2, err := v.Compute(ctx, []byte("same input"), 1000, nil)
	require.NoError(t, err)

	// y depends only on input and t; l and r are freshly sampled per call
	assert.Equal(t, 0, p1.Y.Cmp(p2.Y))
	assert.NotEqual(t, 0, p1.L.Cmp(p2.L))

	for _, proof := range []*Proof{p1, p2} {
		ok, err := v.Verify([]byte("same input"), proof)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestProgressReporting(t *testing.T) {
	v := NewDefault()

	var percents []int
	report := func(percent int) error {
		percents = append(percents, percent)
		return nil
	}

	_, err := v.Compute(context.Background(), []byte("progress"), 2500, report)
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	for i, p := range percents {
		assert.True(t, p >= 0 && p <= 100)
		if i > 0 {
			assert.GreaterOrEqual(t, p, percents[i-1])
		}
	}
	assert.Equal(t, 100, percents[len(percents)-1])
}

func TestProgressErrorsSwallowed(t *testing.T) {
	v := NewDefault()

	report := func(int) error { return errors.New("progress sink unavailable") }
	proof, err := v.Compute(context.Background(), []byte("x"), 1000, report)
	require.NoError(t, err)

	ok, err := v.Verify([]byte("x"), proof)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestComputeCancellation(t *testing.T) {
	v := NewDefault()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := v.Compute(ctx, []byte("x"), 5000, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEstimateIterations(t *testing.T) {
	assert.EqualValues(t, 1000, EstimateIterations(0))
	assert.EqualValues(t, 1000, EstimateIterations(-1))
	assert.EqualValues(t, 5000000, EstimateIterations(0.5))
	assert.EqualValues(t, 10000000, EstimateIterations(100))
}
