package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"talkerbase/internal/domain/fault"
)

// TokenLength is the only property a token is ever checked for. Tokens are
// opaque: issuance keeps no registry, so the gate is a shape check, not an
// authentication proof.
const TokenLength = 16

var (
	ErrTokenMissing = &fault.Error{Kind: fault.Auth, Message: "Token não encontrado"}
	ErrTokenInvalid = &fault.Error{Kind: fault.Auth, Message: "Token inválido"}
)

// ValidateToken gates write operations on the token header shape.
func ValidateToken(token string) error {
	if token == "" {
		return ErrTokenMissing
	}
	if len(token) != TokenLength {
		return ErrTokenInvalid
	}
	return nil
}

// GenerateToken returns a fresh random 16-character hexadecimal string.
func GenerateToken() (string, error) {
	buf := make([]byte, TokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
