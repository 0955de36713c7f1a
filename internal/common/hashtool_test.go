package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntHashSha256(t *testing.T) {
	h := IntHashSha256([]byte("test"))
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", h.Text(16))
	assert.LessOrEqual(t, h.BitLen(), DigestBits)

	assert.Equal(t, 0, IntHashSha256([]byte("test")).Cmp(h))
	assert.NotEqual(t, 0, IntHashSha256([]byte("Test")).Cmp(h))
}
