package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mathgate/internal/auth"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "s3cret-password")

	assert.True(t, hasher.Verify("s3cret-password", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Verify("anything", ""))
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	// An out-of-range cost must not make hashing fail.
	hasher := auth.NewPasswordHasher(99)
	digest, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("pw", digest))
}
