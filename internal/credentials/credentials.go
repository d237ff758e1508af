// Package credentials produces the cleartext secrets handed to demo
// operators and the one-way hashes that actually get persisted. Cleartext
// lives only in memory and in the post-commit report file; the store never
// sees it.
package credentials

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// PasswordLength is the fixed length of every generated password.
const PasswordLength = 12

// passwordAlphabet is the character set passwords are drawn from.
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%?"

// Record pairs a user's identity with its cleartext password for the
// operator report. It exists only transiently; nothing persists it.
type Record struct {
	UserID   int64
	Email    string
	Password string
}

// GeneratePassword draws PasswordLength characters from the alphabet using
// a cryptographically secure source.
func GeneratePassword() (string, error) {
	max := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, PasswordLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// HashPassword computes a salted bcrypt hash at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
