// Package auth provides authentication domain logic: local user accounts,
// password verification, and JWT session tokens.
package auth

import (
	"context"
	"time"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/entity"
	"fakturo/internal/core/id"
)

// User is a local account. PasswordHash is bcrypt and never leaves the
// server; the json tag keeps it out of API responses.
type User struct {
	entity.Base

	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	DisplayName  string `db:"display_name" json:"displayName"`
	IsAdmin      bool   `db:"is_admin" json:"isAdmin"`
	Active       bool   `db:"active" json:"active"`
}

// NewUser creates an active user with a pre-hashed password.
func NewUser(username, passwordHash string) *User {
	return &User{
		Base:         entity.NewBase(),
		Username:     username,
		PasswordHash: passwordHash,
		Active:       true,
	}
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Username == "" {
		return apperror.NewValidation("username is required").
			WithDetail("field", "username")
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").
			WithDetail("field", "password")
	}
	return nil
}

// Credentials is a login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        *User     `json:"user"`
}

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
	Count(ctx context.Context) (int, error)
}
