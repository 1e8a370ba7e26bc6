package token

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/files-manager/internal/model"
)

// ErrEmptyToken is returned when a blank token is presented.
var ErrEmptyToken = errors.New("token is empty")

// Opaque mints random UUIDv4 tokens that carry no information.
type Opaque struct{}

// NewOpaque creates an opaque token minter.
func NewOpaque() model.TokenMinter {
	return Opaque{}
}

// Mint returns a fresh random token.
func (Opaque) Mint() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return id.String(), nil
}

// Verify only rejects empty tokens; the session store decides the rest.
func (Opaque) Verify(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return nil
}
