package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := CreateSessionToken("amara@staffdesk.local", "ADMIN", secret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "amara@staffdesk.local", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, "staffdesk", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := CreateSessionToken("a@b.c", "USER", []byte("right"), time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, []byte("wrong"))
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := CreateSessionToken("a@b.c", "USER", secret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, secret)
	assert.Error(t, err)
}
