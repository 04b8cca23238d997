package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/spendy/ledger/internal/core/domain"
)

// PlaintextPasswords stores and compares passwords verbatim. This is the
// historical behavior of the app and stays the default.
type PlaintextPasswords struct{}

func (PlaintextPasswords) Prepare(plain string) (string, error) { return plain, nil }

func (PlaintextPasswords) Matches(stored, plain string) bool { return stored == plain }

// BcryptPasswords stores bcrypt hashes. Users created under the plaintext
// policy cannot log in once this is switched on.
type BcryptPasswords struct {
	Cost int
}

func (p BcryptPasswords) Prepare(plain string) (string, error) {
	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "is too long")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptPasswords) Matches(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
