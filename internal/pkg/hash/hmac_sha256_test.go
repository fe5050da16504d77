package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACSHA256_Hash(t *testing.T) {
	// RFC 4231 test case 2.
	h := NewHMACSHA256([]byte("Jefe"))

	got, err := h.Hash("what do ya want for nothing?")
	require.NoError(t, err)
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", string(got))
}

func TestHMACSHA256_EmptyKey(t *testing.T) {
	h := NewHMACSHA256(nil)

	got, err := h.Hash("anything")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.Nil(t, got)
	assert.False(t, h.Verify("", "anything"))
}

func TestHMACSHA256_Verify(t *testing.T) {
	h := NewHMACSHA256([]byte("s3cr3t"))

	sum, err := h.Hash("payload")
	require.NoError(t, err)

	assert.True(t, h.Verify(string(sum), "payload"))
	assert.False(t, h.Verify(string(sum), "payload2"))
	assert.False(t, NewHMACSHA256([]byte("other")).Verify(string(sum), "payload"))
}

func TestNewHMACSHA256_CopiesKey(t *testing.T) {
	key := []byte("s3cr3t")
	h := NewHMACSHA256(key)
	before, err := h.Hash("x")
	require.NoError(t, err)

	key[0] = 'X'
	after, err := h.Hash("x")
	require.NoError(t, err)

	assert.Equal(t, before, after)
}
