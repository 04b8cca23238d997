package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// SessionManager holds the signed-in user for the running process. It is
// loaded from the account store at startup and dropped on sign-out.
type SessionManager struct {
	accounts  ports.AccountStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu      sync.RWMutex
	current *domain.User
}

func NewSessionManager(accounts ports.AccountStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionManager {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionManager{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Load restores the persisted session, if any.
func (m *SessionManager) Load(ctx context.Context) error {
	user, found, err := m.accounts.GetSession(ctx)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	m.set(user)
	if found {
		m.log.Info().Str("email", user.Email).Msg("session restored")
	}
	return nil
}

func (m *SessionManager) SignUp(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
	user := domain.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    domain.NormalizeEmail(in.Email),
		Password: in.Password,
	}
	switch {
	case user.Name == "":
		return "", nil, domain.NewValidationError("name", "is required")
	case user.Email == "":
		return "", nil, domain.NewValidationError("email", "is required")
	case user.Password == "":
		return "", nil, domain.NewValidationError("password", "is required")
	case in.ConfirmPassword == "":
		return "", nil, domain.NewValidationError("confirm_password", "is required")
	case in.Password != in.ConfirmPassword:
		return "", nil, domain.NewValidationError("confirm_password", "does not match password")
	}

	if err := m.accounts.Signup(ctx, user); err != nil {
		return "", nil, err
	}
	return m.start(ctx, user)
}

func (m *SessionManager) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("credentials", "email and password are required")
	}

	user, err := m.accounts.Login(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	return m.start(ctx, *user)
}

// SignOut always succeeds from the caller's point of view.
func (m *SessionManager) SignOut(ctx context.Context) {
	m.accounts.ClearSession(ctx)
	m.set(nil)
}

func (m *SessionManager) Current() (*domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil, false
	}
	u := *m.current
	return &u, true
}

// start persists the session for user and issues a bearer token. The token
// is only honoured while user remains the current session.
func (m *SessionManager) start(ctx context.Context, user domain.User) (string, *domain.User, error) {
	if err := m.accounts.SaveSession(ctx, user); err != nil {
		return "", nil, err
	}
	m.set(&user)

	token, err := m.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	m.log.Info().Str("email", user.Email).Msg("session started")
	return token, &user, nil
}

func (m *SessionManager) set(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = user
}

func (m *SessionManager) generateToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{
		"email": user.Email,
		"name":  user.Name,
		"exp":   time.Now().Add(m.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(m.jwtSecret))
}
