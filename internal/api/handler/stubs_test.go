package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/core/aggregate"
	"github.com/spendy/ledger/internal/core/domain"
	"github.com/spendy/ledger/internal/core/ports"
)

type stubSessionService struct {
	signUpFn  func(ctx context.Context, in ports.SignupInput) (string, *domain.User, error)
	signInFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	signedOut bool
	current   *domain.User
}

func (s *stubSessionService) Load(context.Context) error { return nil }

func (s *stubSessionService) SignUp(ctx context.Context, in ports.SignupInput) (string, *domain.User, error) {
	return s.signUpFn(ctx, in)
}

func (s *stubSessionService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubSessionService) SignOut(context.Context) {
	s.signedOut = true
	s.current = nil
}

func (s *stubSessionService) Current() (*domain.User, bool) {
	return s.current, s.current != nil
}

type stubLedgerService struct {
	recordFn     func(ctx context.Context, in ports.RecordInput) (*domain.Transaction, error)
	listFn       func(ctx context.Context) ([]domain.Transaction, error)
	deleteFn     func(ctx context.Context, id string) error
	clearFn      func(ctx context.Context) error
	overviewFn   func(ctx context.Context, year int, month time.Month) (aggregate.Overview, error)
	categoriesFn func(ctx context.Context) (aggregate.Summary, error)
}

func (s *stubLedgerService) Record(ctx context.Context, in ports.RecordInput) (*domain.Transaction, error) {
	return s.recordFn(ctx, in)
}

func (s *stubLedgerService) List(ctx context.Context) ([]domain.Transaction, error) {
	return s.listFn(ctx)
}

func (s *stubLedgerService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubLedgerService) Clear(ctx context.Context) error {
	return s.clearFn(ctx)
}

func (s *stubLedgerService) Overview(ctx context.Context, year int, month time.Month) (aggregate.Overview, error) {
	return s.overviewFn(ctx, year, month)
}

func (s *stubLedgerService) Categories(ctx context.Context) (aggregate.Summary, error) {
	return s.categoriesFn(ctx)
}

type stubCategoryRegistry struct {
	listFn func(ctx context.Context) ([]domain.Category, error)
	addFn  func(ctx context.Context, name, icon string) (domain.Category, error)
}

func (s *stubCategoryRegistry) ListAll(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryRegistry) AddCustom(ctx context.Context, name, icon string) (domain.Category, error) {
	return s.addFn(ctx, name, icon)
}

func (s *stubCategoryRegistry) IconFor(context.Context, string) (string, error) {
	return domain.FallbackIcon, nil
}

// newContext builds an echo context with the request validator installed.
func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d (%v)", code, he.Code, he.Message)
	}
}

func mustNotCall(t *testing.T) {
	t.Helper()
	t.Fatalf("should not be called")
}
