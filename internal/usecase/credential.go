package usecase

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	HasherPlain  = "plain"
	HasherBcrypt = "bcrypt"
)

// CredentialStore converts a password into its stored form and checks login
// attempts against it. Call sites never compare passwords directly.
type CredentialStore interface {
	Seal(password string) (string, error)
	Verify(stored, password string) bool
}

func NewCredentialStore(kind string) (CredentialStore, error) {
	switch kind {
	case "", HasherPlain:
		return plainCredentials{}, nil
	case HasherBcrypt:
		return bcryptCredentials{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", kind)
	}
}

// plainCredentials stores the password as typed.
type plainCredentials struct{}

func (plainCredentials) Seal(password string) (string, error) {
	return password, nil
}

func (plainCredentials) Verify(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

type bcryptCredentials struct {
	cost int
}

func (b bcryptCredentials) Seal(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (bcryptCredentials) Verify(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}
