package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPRNGDeterministicPerSeed(t *testing.T) {
	seed := [32]byte{1, 2, 3}
	a, err := NewCPRNG(&seed)
	require.NoError(t, err)
	b, err := NewCPRNG(&seed)
	require.NoError(t, err)

	buf1 := make([]byte, 50)
	buf2 := make([]byte, 50)
	_, err = a.Read(buf1)
	require.NoError(t, err)
	_, err = b.Read(buf2)
	require.NoError(t, err)
	assert.Equal(t, buf1, buf2)

	// consecutive reads continue the stream
	buf3 := make([]byte, 50)
	_, err = a.Read(buf3)
	require.NoError(t, err)
	assert.NotEqual(t, buf1, buf3)
}

func TestSessionRandomsIndependent(t *testing.T) {
	a, err := NewSessionRandom()
	require.NoError(t, err)
	b, err := NewSessionRandom()
	require.NoError(t, err)

	buf1 := make([]byte, 32)
	buf2 := make([]byte, 32)
	_, err = a.Read(buf1)
	require.NoError(t, err)
	_, err = b.Read(buf2)
	require.NoError(t, err)
	assert.NotEqual(t, buf1, buf2)
}
