package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mygroup/simple-community/pkg/apperr"
)

const testIssuer = "simple community"

func testManager(ttl time.Duration) *TokenManager {
	return NewTokenManager("unit-test-secret-key", testIssuer, ttl)
}

func TestTokenRoundTrip(t *testing.T) {
	m := testManager(6 * time.Hour)

	token, err := m.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestValidateExpiredToken(t *testing.T) {
	m := testManager(-time.Minute)

	token, err := m.Issue("user-42")
	require.NoError(t, err)

	subject, err := m.Validate(token)
	assert.Empty(t, subject)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestValidateWrongSecret(t *testing.T) {
	m := testManager(time.Hour)
	token, err := m.Issue("user-42")
	require.NoError(t, err)

	other := NewTokenManager("a-completely-different-key", testIssuer, time.Hour)
	subject, err := other.Validate(token)
	assert.Empty(t, subject)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestValidateWrongIssuer(t *testing.T) {
	m := testManager(time.Hour)
	token, err := m.Issue("user-42")
	require.NoError(t, err)

	other := NewTokenManager("unit-test-secret-key", "someone else", time.Hour)
	subject, err := other.Validate(token)
	assert.Empty(t, subject)
	assert.True(t, apperr.Is(err, apperr.InvalidToken))
}

func TestValidateMalformedToken(t *testing.T) {
	m := testManager(time.Hour)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "eyJhbGciOiJub25lIn0.e30."} {
		subject, err := m.Validate(tok)
		assert.Empty(t, subject, "token %q", tok)
		assert.True(t, apperr.Is(err, apperr.InvalidToken), "token %q", tok)
	}
}
