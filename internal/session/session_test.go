package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapegenie/storefront/internal/marketplace"
	"github.com/scrapegenie/storefront/internal/session"
)

func TestNew(t *testing.T) {
	sess, err := session.New(time.Hour)
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.NotEqual(t, sess.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Nil(t, sess.Identity)
	assert.False(t, sess.Loading)
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, sess.IsExpired())
	assert.True(t, sess.IsModified())
}

func TestSession_Authenticate(t *testing.T) {
	sess, err := session.New(time.Hour)
	require.NoError(t, err)

	oldToken := sess.Token
	identity := marketplace.Identity{ID: "u1", DisplayName: "Sam", Role: marketplace.RoleSeller}

	require.NoError(t, sess.Authenticate(identity, "sid=abc"))

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, marketplace.RoleSeller, sess.Identity.Role)
	assert.Equal(t, "sid=abc", sess.Credential)
	assert.NotEqual(t, oldToken, sess.Token, "token must rotate on authentication")
}

func TestSession_Clear(t *testing.T) {
	sess, err := session.New(time.Hour)
	require.NoError(t, err)
	require.NoError(t, sess.Authenticate(marketplace.Identity{ID: "u1"}, "sid=abc"))

	authToken := sess.Token
	require.NoError(t, sess.Clear())

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.Identity)
	assert.Empty(t, sess.Credential)
	assert.NotEqual(t, authToken, sess.Token, "token must rotate on clear")
}

func TestSession_Touch(t *testing.T) {
	sess, err := session.New(time.Minute)
	require.NoError(t, err)
	before := sess.ExpiresAt

	// Interval not elapsed: no extension
	sess.Touch(time.Hour, time.Hour)
	assert.Equal(t, before, sess.ExpiresAt)

	// Zero interval: always extend
	sess.Touch(time.Hour, 0)
	assert.True(t, sess.ExpiresAt.After(before))
}

func TestSession_SetLoading(t *testing.T) {
	sess, err := session.New(time.Hour)
	require.NoError(t, err)

	sess.SetLoading(true)
	assert.True(t, sess.Loading)
	sess.SetLoading(false)
	assert.False(t, sess.Loading)
}
