package vdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verifiabledelay/vdf/big"
)

func TestDefaultGroup(t *testing.T) {
	g := DefaultGroup()
	require.NotNil(t, g)
	assert.Equal(t, 2048, g.N().BitLen())
	assert.Equal(t, uint(1), g.N().Bit(0))
}

func TestNewGroupValidation(t *testing.T) {
	_, err := NewGroup(nil)
	assert.Error(t, err)

	even := new(big.Int).Lsh(big.NewInt(1), 2048)
	_, err = NewGroup(even)
	assert.Error(t, err)

	// odd but not larger than the challenge digest width
	_, err = NewGroup(big.NewInt(101))
	assert.Error(t, err)
}

func TestGroupOperations(t *testing.T) {
	n, ok := new(big.Int).SetString(DefaultModulusHex, 16)
	require.True(t, ok)
	g, err := NewGroup(n)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Exp(big.NewInt(7), big.NewInt(2)).Cmp(big.NewInt(49)))
	assert.Equal(t, 0, g.Mul(big.NewInt(6), big.NewInt(7)).Cmp(big.NewInt(42)))
}

func TestGroupModulusImmutable(t *testing.T) {
	g := DefaultGroup()
	n := g.N()
	n.SetInt64(1)
	assert.Equal(t, 2048, g.N().BitLen())
}
