// Package alias generates the short codes that stand in for long URLs.
package alias

import (
	"fmt"
	"math/rand"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	// DefaultLength is the length of generated aliases.
	DefaultLength = 6
	// MaxLength bounds both generated and user-requested aliases.
	MaxLength = 16
)

// Generate returns length characters drawn uniformly from the 62-character
// alphanumeric alphabet. Uniqueness is enforced by the store, not here, and
// the codes are not meant to be unguessable.
func Generate(length int) (string, error) {
	if length <= 0 || length > MaxLength {
		return "", fmt.Errorf("alias length %d out of range (1..%d)", length, MaxLength)
	}
	code := make([]byte, length)
	for i := range code {
		code[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(code), nil
}

// Valid reports whether code is acceptable as a requested custom alias.
func Valid(code string) bool {
	if code == "" || len(code) > MaxLength {
		return false
	}
	for _, c := range code {
		if !isAlphanumeric(c) {
			return false
		}
	}
	return true
}

func isAlphanumeric(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
