package ports

import (
	"context"

	"github.com/spendy/ledger/internal/core/domain"
)

// SignupInput is the DTO passed from the transport layer to the session manager.
type SignupInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// SessionService owns the in-process view of who is signed in.
type SessionService interface {
	Load(ctx context.Context) error
	SignUp(ctx context.Context, in SignupInput) (token string, user *domain.User, err error)
	SignIn(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	SignOut(ctx context.Context)
	Current() (*domain.User, bool)
}
