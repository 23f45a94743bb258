package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewOTP6 returns a 6-digit one-time code, zero-padded so short numbers
// still render as six characters (e.g. "000123").  Codes are generated with
// crypto/rand; they gate email verification, not just UX.
func NewOTP6() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
