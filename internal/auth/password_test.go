package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", digest)

	require.True(t, CheckPassword("secret", digest))
	require.False(t, CheckPassword("not-secret", digest))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	require.False(t, CheckPassword("secret", ""))
	require.False(t, CheckPassword("secret", "not-a-bcrypt-digest"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("secret")
	require.NoError(t, err)
	b, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
