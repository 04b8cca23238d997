package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/spendy/ledger/internal/core/domain"
)

// Context keys set by Auth.
const (
	ContextKeyEmail = "email"
	ContextKeyName  = "name"
)

// SessionReader exposes the signed-in user.
type SessionReader interface {
	Current() (*domain.User, bool)
}

// Auth validates the bearer JWT and requires its email claim to match the
// current session, so tokens stop working after logout.
func Auth(jwtSecret string, sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (any, error) {
				return []byte(jwtSecret), nil
			},
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			email, _ := claims["email"].(string)
			current, ok := sessions.Current()
			if !ok || email == "" || current.Email != email {
				return echo.NewHTTPError(http.StatusUnauthorized, "session ended")
			}

			c.Set(ContextKeyEmail, email)
			c.Set(ContextKeyName, current.Name)

			return next(c)
		}
	}
}
