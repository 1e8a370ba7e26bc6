package model

// TokenMinter generates session tokens and rejects malformed ones before a
// store lookup. Token existence in the SessionStore remains the authority.
type TokenMinter interface {
	Mint() (string, error)
	Verify(token string) error
}
