package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/tx"
	"fakturo/pkg/logger"
)

const minPasswordLength = 8

// Service provides authentication logic. Passwords and tokens are never
// logged.
type Service struct {
	users      UserRepository
	txManager  tx.Manager
	jwtService *JWTService
}

// NewService creates a new auth service.
func NewService(users UserRepository, txManager tx.Manager, jwtService *JWTService) *Service {
	return &Service{
		users:      users,
		txManager:  txManager,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues a session token. Unknown user,
// wrong password, and deactivated account all fail the same way so the
// response leaks nothing about which part was wrong.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}
	if !user.Active {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		logger.Warn(ctx, "failed login attempt", "username", creds.Username)
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID.String(), "username", user.Username)

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

// CreateUser registers a new account with a bcrypt-hashed password.
func (s *Service) CreateUser(ctx context.Context, username, password, displayName string, isAdmin bool) (*User, error) {
	if len(password) < minPasswordLength {
		return nil, apperror.NewValidation(
			fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		).WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := NewUser(username, string(hash))
	user.DisplayName = displayName
	user.IsAdmin = isAdmin

	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user created", "user_id", user.ID.String(), "username", user.Username)
	return user, nil
}

// EnsureAdmin seeds the initial admin account when no users exist yet.
// Called once at startup; a populated user table makes it a no-op.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if _, err := s.CreateUser(ctx, username, password, "Administrator", true); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

// ValidateToken delegates to the JWT service.
func (s *Service) ValidateToken(token string) (*Identity, error) {
	return s.jwtService.ValidateToken(token)
}
