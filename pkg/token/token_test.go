package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue("user-1", "john@example.com", "John Doe")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "John Doe", claims.Name)
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue("user-1", "john@example.com", "John Doe")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := NewManager("key-one", time.Hour)
	verifier := NewManager("key-two", time.Hour)

	signed, err := issuer.Issue("user-1", "john@example.com", "John Doe")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_MalformedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.Error(t, err, "token %q should not verify", tok)
	}
}
