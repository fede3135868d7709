package auth

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/khallaftaha-cmyk/Cloud-Notes-API/internal/repository"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/pkg/config"
	"github.com/khallaftaha-cmyk/Cloud-Notes-API/pkg/crypto"
	jwtpkg "github.com/khallaftaha-cmyk/Cloud-Notes-API/pkg/jwt"
)

var (
	// ErrInvalidCredentials covers both unknown email and password mismatch so
	// the two cases cannot be told apart by a caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers missing, malformed, expired and badly signed
	// bearer tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Token is the credential returned by a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service handles authentication workflows: credential verification on login
// and bearer-token resolution on protected requests.
type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
	cfg    config.APIConfig
}

// New constructs a Service.
func New(users repository.UserRepository, logger *slog.Logger, cfg config.APIConfig) Service {
	return Service{users: users, logger: logger, cfg: cfg}
}

// Login verifies the submitted credentials and issues a signed bearer token
// bound to the user id.
func (s Service) Login(ctx context.Context, email, password string) (Token, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Token{}, ErrInvalidCredentials
		}
		return Token{}, err
	}
	if err := crypto.ComparePassword(user.PasswordHash, password); err != nil {
		return Token{}, ErrInvalidCredentials
	}
	access, err := jwtpkg.GenerateToken(user.ID, s.cfg.JWTSecret, s.cfg.AccessTokenTTL)
	if err != nil {
		return Token{}, err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return Token{AccessToken: access, TokenType: "bearer"}, nil
}

// Authorize verifies signature and expiry of a presented bearer token and
// returns the bound user id. No store access happens here.
func (s Service) Authorize(token string) (int64, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return 0, ErrInvalidToken
	}
	claims, err := jwtpkg.Parse(trimmed, s.cfg.JWTSecret)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}
