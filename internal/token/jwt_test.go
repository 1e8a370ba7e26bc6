package token

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_MintAndVerify(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret")

	tok, err := m.Mint()
	require.NoError(t, err)
	assert.Len(t, strings.Split(tok, "."), 3)
	assert.NoError(t, m.Verify(tok))
}

func TestJWT_MintIsUnique(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret")

	a, err := m.Mint()
	require.NoError(t, err)
	b, err := m.Mint()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestJWT_Verify_Rejects(t *testing.T) {
	t.Parallel()

	m := NewJWT("secret")
	other := NewJWT("other-secret")

	foreign, err := other.Mint()
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{ID: "x", Issuer: issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: issuer}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", foreign},
		{"none algorithm", noneToken},
		{"missing jti", noID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, m.Verify(tt.token))
		})
	}
}
