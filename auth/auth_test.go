package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brothersphoto/site-backend/errs"
)

var testKey = []byte("test-signing-key")

func TestFixedSecret(t *testing.T) {
	verifier := NewFixedSecret("open-sesame")

	assert.True(t, verifier.Verify("open-sesame"))
	assert.False(t, verifier.Verify("open-sesame "))
	assert.False(t, verifier.Verify("OPEN-SESAME"))
	assert.False(t, verifier.Verify(""))

	// An unset secret never verifies, even against the empty string.
	assert.False(t, NewFixedSecret("").Verify(""))
}

func TestSessionsLogin(t *testing.T) {
	sessions := NewSessions(NewFixedSecret("open-sesame"), testKey, time.Hour)

	t.Run("correct secret issues a valid token", func(t *testing.T) {
		token, err := sessions.Login("open-sesame")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.NoError(t, sessions.Authenticate(token))
	})

	t.Run("wrong secret leaves caller anonymous", func(t *testing.T) {
		_, err := sessions.Login("guess")
		require.Error(t, err)

		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.StatusCode)
	})
}

func TestSessionsAuthenticate(t *testing.T) {
	sessions := NewSessions(NewFixedSecret("open-sesame"), testKey, time.Hour)

	t.Run("garbage token is rejected", func(t *testing.T) {
		assert.Error(t, sessions.Authenticate("not-a-token"))
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		other := NewSessions(NewFixedSecret("open-sesame"), []byte("other-key"), time.Hour)
		token, err := other.Login("open-sesame")
		require.NoError(t, err)

		assert.Error(t, sessions.Authenticate(token))
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		shortLived := NewSessions(NewFixedSecret("open-sesame"), testKey, time.Nanosecond)
		token, err := shortLived.Login("open-sesame")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		err = shortLived.Authenticate(token)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrExpiredToken)
	})
}

func TestSessionsLogout(t *testing.T) {
	sessions := NewSessions(NewFixedSecret("open-sesame"), testKey, time.Hour)

	token, err := sessions.Login("open-sesame")
	require.NoError(t, err)
	require.NoError(t, sessions.Authenticate(token))

	sessions.Logout(token)
	assert.Error(t, sessions.Authenticate(token), "revoked token must not authenticate")

	// Logging out again, or with junk, is a no-op.
	sessions.Logout(token)
	sessions.Logout("junk")

	// A fresh login still works after logout.
	fresh, err := sessions.Login("open-sesame")
	require.NoError(t, err)
	assert.NoError(t, sessions.Authenticate(fresh))
}
