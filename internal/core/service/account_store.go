package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

// AccountStore keeps the user list and the session record in a key-value store.
// Every mutation rewrites the whole user list; concurrent signups for the same
// email can both succeed.
type AccountStore struct {
	kv        ports.KeyValueStore
	passwords ports.PasswordPolicy
	log       zerolog.Logger
}

func NewAccountStore(kv ports.KeyValueStore, passwords ports.PasswordPolicy, log zerolog.Logger) *AccountStore {
	if passwords == nil {
		passwords = PlaintextPasswords{}
	}
	return &AccountStore{kv: kv, passwords: passwords, log: log}
}

// Signup appends user unless a stored user already has the same email.
func (s *AccountStore) Signup(ctx context.Context, user domain.User) error {
	users, err := loadList[domain.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	for _, u := range users {
		if u.Email == user.Email {
			return domain.ErrDuplicateUser
		}
	}

	stored, err := s.passwords.Prepare(user.Password)
	if err != nil {
		return fmt.Errorf("signup: prepare password: %w", err)
	}
	user.Password = stored

	if err := storeList(ctx, s.kv, KeyUsers, append(users, user)); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Login returns the first user whose email and password both match.
func (s *AccountStore) Login(ctx context.Context, email, password string) (*domain.User, error) {
	users, err := loadList[domain.User](ctx, s.kv, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	for _, u := range users {
		if u.Email == email && s.passwords.Matches(u.Password, password) {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// SaveSession overwrites the session with user. The user list is not consulted.
func (s *AccountStore) SaveSession(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.kv.Set(ctx, KeySession, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", &domain.StorageError{Op: "set", Key: KeySession, Err: err})
	}
	return nil
}

// GetSession returns the stored session, if any. An undecodable record is
// dropped and reported as absent; only read failures are errors.
func (s *AccountStore) GetSession(ctx context.Context) (*domain.User, bool, error) {
	raw, found, err := s.kv.Get(ctx, KeySession)
	if err != nil {
		return nil, false, fmt.Errorf("get session: %w", &domain.StorageError{Op: "get", Key: KeySession, Err: err})
	}
	if !found || raw == "" {
		return nil, false, nil
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.log.Warn().Err(err).Str("key", KeySession).Msg("discarding unreadable session")
		if err := s.kv.Remove(ctx, KeySession); err != nil {
			s.log.Warn().Err(err).Str("key", KeySession).Msg("failed to remove unreadable session")
		}
		return nil, false, nil
	}
	return &u, true, nil
}

// Logout removes the session. Removing an absent session is not an error.
func (s *AccountStore) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeySession); err != nil {
		return fmt.Errorf("logout: %w", &domain.StorageError{Op: "remove", Key: KeySession, Err: err})
	}
	return nil
}

// ClearSession is Logout for callers that must always complete.
func (s *AccountStore) ClearSession(ctx context.Context) {
	if err := s.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session")
	}
}
