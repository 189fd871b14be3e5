package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mathgate/internal/domain"
)

// TokenKind tags a token as either an access or a refresh credential.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims is the verified payload of a decoded token.
type TokenClaims struct {
	Subject   uuid.UUID
	ExpiresAt time.Time
	IssuedAt  time.Time
	Kind      TokenKind
}

// TokenPair bundles an access token with its companion refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies signed, expiring identity tokens.
//
// Tokens are self-contained: verification needs no store lookup, and there
// is no way to revoke a token before it expires.
type TokenService interface {
	CreateAccessToken(userID uuid.UUID) (string, error)
	CreateRefreshToken(userID uuid.UUID) (string, error)
	// CreateTokenPair mints both tokens from the same time baseline.
	CreateTokenPair(userID uuid.UUID) (TokenPair, error)
	// DecodeToken verifies signature and expiry and returns the claims.
	// Any failure surfaces as domain.ErrInvalidToken.
	DecodeToken(token string) (TokenClaims, error)
	VerifyAccessToken(token string) (TokenClaims, error)
	VerifyRefreshToken(token string) (TokenClaims, error)
}

type jwtTokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenService returns a TokenService signing HS256 tokens with the
// given secret and lifetimes.
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) TokenService {
	return &jwtTokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *jwtTokenService) createToken(userID uuid.UUID, kind TokenKind, now time.Time, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"exp":  now.Add(ttl).Unix(),
		"type": string(kind),
		"iat":  now.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

func (s *jwtTokenService) CreateAccessToken(userID uuid.UUID) (string, error) {
	return s.createToken(userID, TokenKindAccess, time.Now().UTC(), s.accessTTL)
}

func (s *jwtTokenService) CreateRefreshToken(userID uuid.UUID) (string, error) {
	return s.createToken(userID, TokenKindRefresh, time.Now().UTC(), s.refreshTTL)
}

func (s *jwtTokenService) CreateTokenPair(userID uuid.UUID) (TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.createToken(userID, TokenKindAccess, now, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.createToken(userID, TokenKindRefresh, now, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *jwtTokenService) DecodeToken(token string) (TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return TokenClaims{}, domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	subject, err := uuid.Parse(sub)
	if err != nil {
		return TokenClaims{}, fmt.Errorf("%w: malformed subject", domain.ErrInvalidToken)
	}

	kind, ok := claims["type"].(string)
	if !ok || kind == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing token type", domain.ErrInvalidToken)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return TokenClaims{}, fmt.Errorf("%w: missing expiry", domain.ErrInvalidToken)
	}

	out := TokenClaims{
		Subject:   subject,
		ExpiresAt: exp.Time,
		Kind:      TokenKind(kind),
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	return out, nil
}

func (s *jwtTokenService) VerifyAccessToken(token string) (TokenClaims, error) {
	return s.verifyKind(token, TokenKindAccess)
}

func (s *jwtTokenService) VerifyRefreshToken(token string) (TokenClaims, error) {
	return s.verifyKind(token, TokenKindRefresh)
}

func (s *jwtTokenService) verifyKind(token string, kind TokenKind) (TokenClaims, error) {
	claims, err := s.DecodeToken(token)
	if err != nil {
		return TokenClaims{}, err
	}
	if claims.Kind != kind {
		return TokenClaims{}, fmt.Errorf("%w: expected %s token", domain.ErrInvalidToken, kind)
	}
	return claims, nil
}
