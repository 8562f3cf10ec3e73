package utils

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewSessionToken returns 32 random bytes as a hex string.
func NewSessionToken() (string, error) {
	b := make([]byte, 32)

	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", b), nil
}
