// Package session issues and verifies admin session tokens.
//
// A session is an HS256 JWT kept in an HTTP-only cookie. Logging out
// revokes the token's id in Redis until the token would have expired
// anyway, so a stolen cookie stops working immediately.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is stamped into and required on every token.
const Issuer = "salon"

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrRevoked      = errors.New("session has been revoked")
)

// Claims identify the signed-in admin. Subject holds the admin id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminID parses the subject back into a uuid.
func (c *Claims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// RevocationStore remembers revoked token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Manager signs, verifies and revokes session tokens. It holds no
// per-session state of its own.
type Manager struct {
	secret      []byte
	ttl         time.Duration
	revocations RevocationStore
	now         func() time.Time
}

func NewManager(secret string, ttl time.Duration, revocations RevocationStore) *Manager {
	return &Manager{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
		now:         time.Now,
	}
}

// Issue signs a new token for admin.
func (m *Manager) Issue(admin *model.Admin) (string, *Claims, error) {
	now := m.now()

	claims := &Claims{
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   admin.ID.String(),
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, claims, nil
}

// Parse verifies the signature, issuer and expiry of token and checks
// that it has not been revoked.
func (m *Manager) Parse(ctx context.Context, token string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ExpiresAt == nil || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	if _, err := claims.AdminID(); err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	revoked, err := m.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session revocation: %w", err)
	}
	if revoked {
		return nil, ErrRevoked
	}

	return claims, nil
}

// Revoke invalidates claims for the rest of their lifetime.
func (m *Manager) Revoke(ctx context.Context, claims *Claims) error {
	if claims.ExpiresAt == nil {
		return ErrInvalidToken
	}

	ttl := claims.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}

	return m.revocations.Revoke(ctx, claims.ID, ttl)
}
