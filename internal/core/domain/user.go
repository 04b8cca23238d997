package domain

import "strings"

// User models a locally registered account.
//
// Password holds whatever the configured password policy stores: the plaintext
// value by default, or a bcrypt hash when hashing is enabled.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NormalizeEmail trims and lower-cases an email before it reaches the account store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
