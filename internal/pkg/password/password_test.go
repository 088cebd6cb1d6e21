package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, Verify("s3cret-password", hash))
	assert.False(t, Verify("wrong-password", hash))
	assert.False(t, Verify("s3cret-password", "not-a-bcrypt-hash"))
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("token-a")
	b := Fingerprint("token-b")

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Fingerprint("token-a"))
}
