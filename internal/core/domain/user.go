package domain

import (
	"strings"
	"time"
)

// User models a registered account. The normalized (lower-cased) email is the
// natural key; no two users may share one. PasswordHash is never serialized
// to clients.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// NormalizeEmail lower-cases and trims an email address for storage and
// lookup. Uniqueness is enforced on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
