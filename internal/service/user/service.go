package user

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/domain"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/repository"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/pkg/crypto"
)

var (
	errEmailRequired    = errors.New("email is required")
	errPasswordRequired = errors.New("password is required")
)

// Service implements registration and read-by-id over the credential store.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// New returns a user service.
func New(users repository.UserRepository, logger *slog.Logger) Service {
	return Service{users: users, logger: logger}
}

// Register hashes the password and persists a new account. The plaintext is
// never stored; duplicate emails surface as repository.ErrConflict.
func (s Service) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errEmailRequired
	}
	if password == "" {
		return nil, errPasswordRequired
	}
	hashed, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Email: email, PasswordHash: hashed}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Get returns the account by identifier.
func (s Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetUserByID(ctx, id)
}
