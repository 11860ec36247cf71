package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)
	id := uuid.New()

	token, err := tm.Generate(id, "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, identity.ID)
	assert.Equal(t, "admin@example.com", identity.Email)
	assert.Equal(t, "admin", identity.Role)
}

func TestVerify_RejectsEmptyToken(t *testing.T) {
	tm := NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)

	_, err := tm.Verify("")
	assert.Error(t, err)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	issuing := NewTokenManager("secret-one-padded-to-32-chars-xxxxx", "subsite-backend", time.Hour)
	verifying := NewTokenManager("secret-two-padded-to-32-chars-xxxxx", "subsite-backend", time.Hour)

	token, err := issuing.Generate(uuid.New(), "a@b.c", "admin")
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsWrongIssuer(t *testing.T) {
	issuing := NewTokenManager("test-secret-at-least-32-characters!!", "other-service", time.Hour)
	verifying := NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", time.Hour)

	token, err := issuing.Generate(uuid.New(), "a@b.c", "admin")
	require.NoError(t, err)

	_, err = verifying.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret-at-least-32-characters!!", "subsite-backend", -time.Minute)

	token, err := tm.Generate(uuid.New(), "a@b.c", "admin")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.Error(t, err)
}
