package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"mathgate/internal/auth"
	"mathgate/internal/domain"
	"mathgate/internal/repository"
)

// AuthService orchestrates the credential lifecycle: registration, login,
// token refresh and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (auth.TokenPair, error)
	Login(ctx context.Context, email, password string) (auth.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
	tokens auth.TokenService

	// requireActive gates login and refresh on User.IsActive.
	requireActive bool
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenService, requireActive bool) AuthService {
	return &authService{
		users:         users,
		hasher:        hasher,
		tokens:        tokens,
		requireActive: requireActive,
	}
}

// Register creates a new active user and returns a token pair for it.
// Email uniqueness is checked before username uniqueness so duplicate
// errors are deterministic; the storage layer's unique constraints remain
// the authoritative guard against concurrent duplicates.
func (s *authService) Register(ctx context.Context, email, username, password string) (auth.TokenPair, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	// Length is checked on the trimmed value so padding cannot smuggle a
	// too-short username past the HTTP binding rules.
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return auth.TokenPair{}, fmt.Errorf("%w: username must be 3-50 characters", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return auth.TokenPair{}, fmt.Errorf("%w: email %q is taken", domain.ErrUserAlreadyExists, email)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return auth.TokenPair{}, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return auth.TokenPair{}, fmt.Errorf("%w: username %q is taken", domain.ErrUserAlreadyExists, username)
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return auth.TokenPair{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return auth.TokenPair{}, err
	}

	user := &domain.User{
		ID:             uuid.New(),
		Email:          email,
		Username:       username,
		HashedPassword: hash,
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return auth.TokenPair{}, err
	}

	return s.tokens.CreateTokenPair(user.ID)
}

// Login verifies credentials and returns a fresh token pair. Unknown email
// and wrong password both yield domain.ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return auth.TokenPair{}, domain.ErrInvalidCredentials
		}
		return auth.TokenPair{}, err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}

	if s.requireActive && !user.IsActive {
		return auth.TokenPair{}, domain.ErrInactiveUser
	}

	return s.tokens.CreateTokenPair(user.ID)
}

// Refresh verifies a refresh token and rotates in a new token pair. The old
// refresh token stays valid until its natural expiry; there is no blacklist.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenPair{}, err
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return auth.TokenPair{}, err
	}

	if s.requireActive && !user.IsActive {
		return auth.TokenPair{}, domain.ErrInactiveUser
	}

	return s.tokens.CreateTokenPair(user.ID)
}

// CurrentUser returns the user's public fields, never the password hash.
func (s *authService) CurrentUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
