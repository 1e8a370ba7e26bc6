package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

const issuer = "files-manager"

// JWT mints HMAC-signed session tokens. The signature lets forged tokens be
// rejected without a store round trip; the session store still decides
// whether a well-formed token is live.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

// NewJWT creates a new JWT token minter with the provided secret key.
func NewJWT(secretKey string) model.TokenMinter {
	return &JWT{secretKey: []byte(secretKey), now: time.Now}
}

// Mint creates a signed token with a random JTI.
func (j *JWT) Mint() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:       uuid.NewString(),
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(j.now()),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature, signing method and issuer.
func (j *JWT) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrEmptyToken
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is invalid")
	}
	if claims.ID == "" {
		return fmt.Errorf("token has no id")
	}

	return nil
}
