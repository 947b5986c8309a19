package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

var (
	ErrMissingSecret = errors.New("token secret is required")
	ErrInvalidTTL    = errors.New("token ttl must be positive")
	errMissingClaims = errors.New("token claims are incomplete")
)

// Claims is the signed access-token payload.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256 access tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clockwork.Clock
}

func NewManager(secret, issuer string, ttl time.Duration) (*Manager, error) {
	return NewManagerWithClock(secret, issuer, ttl, clockwork.NewRealClock())
}

func NewManagerWithClock(secret, issuer string, ttl time.Duration, clock clockwork.Clock) (*Manager, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Manager{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		ttl:    ttl,
		clock:  clock,
	}, nil
}

func (m *Manager) Issue(_ context.Context, item user.User) (usecase.AccessToken, error) {
	now := m.clock.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Username: item.Username,
		Role:     string(item.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   item.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return usecase.AccessToken{}, errors.Wrap(err, "sign access token")
	}

	return usecase.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// VerifyAccessToken parses a bearer token into the requester's principal.
// Every failure is reported as usecase.ErrUnauthenticated.
func (m *Manager) VerifyAccessToken(_ context.Context, raw string) (user.Principal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthenticated, describeParseError(err))
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthenticated, errMissingClaims)
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthenticated, err)
	}

	return user.Principal{
		UserID:   claims.Subject,
		Username: claims.Username,
		Role:     role,
	}, nil
}

func describeParseError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid token signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed token"
	default:
		return "invalid token"
	}
}
