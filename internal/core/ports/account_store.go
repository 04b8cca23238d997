package ports

import (
	"context"

	"github.com/spendy/ledger/internal/core/domain"
)

// AccountStore persists the user list and the single active session.
type AccountStore interface {
	Signup(ctx context.Context, user domain.User) error
	// Login expects the caller to have normalized email already.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	SaveSession(ctx context.Context, user domain.User) error
	// GetSession returns found == false when nobody is signed in.
	GetSession(ctx context.Context) (user *domain.User, found bool, err error)
	Logout(ctx context.Context) error
	// ClearSession never fails; storage errors are logged and dropped.
	ClearSession(ctx context.Context)
}

// PasswordPolicy decides how a password is stored and compared.
type PasswordPolicy interface {
	Prepare(plain string) (stored string, err error)
	Matches(stored, plain string) bool
}
