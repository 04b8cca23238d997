package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/core/domain"
)

type stubSessions struct {
	user *domain.User
}

func (s stubSessions) Current() (*domain.User, bool) {
	return s.user, s.user != nil
}

var ana = &domain.User{Name: "Ana", Email: "ana@example.com"}

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key any) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validToken(t *testing.T, email string) string {
	return signToken(t, jwt.MapClaims{
		"email": email,
		"name":  "Ana",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, []byte("secret"))
}

// run invokes the middleware and renders any error the way the router would.
func run(t *testing.T, header string, sessions SessionReader, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth("secret", sessions)(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func unreachable(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	called := false
	rec := run(t, "Bearer "+validToken(t, ana.Email), stubSessions{user: ana}, func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyEmail) != "ana@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(ContextKeyName) != "Ana" {
			t.Fatalf("name not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec := run(t, "", stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rec := run(t, "Token abc", stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec := run(t, "Bearer not-a-token", stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"email": ana.Email}, jwt.SigningMethodHS256, []byte("other"))
	rec := run(t, "Bearer "+token, stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": ana.Email,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}, jwt.SigningMethodHS256, []byte("secret"))
	rec := run(t, "Bearer "+token, stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_TokenWithoutExpiry(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"email": ana.Email, "name": "Ana"}, jwt.SigningMethodHS256, []byte("secret"))
	rec := run(t, "Bearer "+token, stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_OtherSigningMethod(t *testing.T) {
	token := signToken(t, jwt.MapClaims{
		"email": ana.Email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS512, []byte("secret"))
	rec := run(t, "Bearer "+token, stubSessions{user: ana}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_NoSession(t *testing.T) {
	rec := run(t, "Bearer "+validToken(t, ana.Email), stubSessions{}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestAuthMiddleware_OtherUsersSession(t *testing.T) {
	bob := &domain.User{Name: "Bob", Email: "bob@example.com"}
	rec := run(t, "Bearer "+validToken(t, ana.Email), stubSessions{user: bob}, unreachable(t))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale token, got %d", rec.Code)
	}
}
