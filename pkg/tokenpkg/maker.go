// Package tokenpkg creates and verifies access tokens that identify API callers.
package tokenpkg

import (
	"fmt"
	"time"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific username and duration.
	CreateToken(username string, duration time.Duration) (string, *Payload, error)
	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// Supported token types.
const (
	TypePaseto = "paseto"
	TypeJWT    = "jwt"
)

// NewMaker returns the Maker of the given token type. An empty type selects PASETO.
func NewMaker(tokenType, secretKey string) (Maker, error) {
	switch tokenType {
	case "", TypePaseto:
		return NewPasetoMaker(secretKey)
	case TypeJWT:
		return NewJWTMaker(secretKey)
	default:
		return nil, fmt.Errorf("unknown token type %q", tokenType)
	}
}
