package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"
)

const (
	// RoleAdmin is the only role issued.
	RoleAdmin = "admin"

	// DefaultTokenTTL is the session token lifetime.
	DefaultTokenTTL = 24 * time.Hour

	minSecretLen = 32
	issuer       = "lensfolio"
)

// Claims of a session token.
type Claims struct {
	ID        string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type privateClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	signer jose.Signer
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer. ttl <= 0 uses DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < minSecretLen {
		return nil, ErrSecretTooShort
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: []byte(secret)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenIssuer{secret: []byte(secret), signer: signer, ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime.
func (ti *TokenIssuer) TTL() time.Duration {
	return ti.ttl
}

// Issue signs a new admin token for email.
func (ti *TokenIssuer) Issue(email string) (string, Claims, error) {
	now := ti.now()

	c := Claims{
		ID:        uuid.NewString(),
		Email:     normalizeEmail(email),
		Role:      RoleAdmin,
		IssuedAt:  now,
		ExpiresAt: now.Add(ti.ttl),
	}

	token, err := jwt.Signed(ti.signer).
		Claims(jwt.Claims{
			Issuer:   issuer,
			Subject:  c.Email,
			ID:       c.ID,
			IssuedAt: jwt.NewNumericDate(c.IssuedAt),
			Expiry:   jwt.NewNumericDate(c.ExpiresAt),
		}).
		Claims(privateClaims{Email: c.Email, Role: c.Role}).
		Serialize()
	if err != nil {
		return "", Claims{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, c, nil
}

// Verify checks signature, issuer, expiry and role of token.
func (ti *TokenIssuer) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var (
		std  jwt.Claims
		priv privateClaims
	)

	if err = parsed.Claims(ti.secret, &std, &priv); err != nil {
		return Claims{}, ErrInvalidToken
	}

	if err = std.ValidateWithLeeway(jwt.Expected{Issuer: issuer, Time: ti.now()}, 0); err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return Claims{}, ErrTokenExpired
		}

		return Claims{}, ErrInvalidToken
	}

	if priv.Role != RoleAdmin || std.ID == "" || std.Expiry == nil {
		return Claims{}, ErrInvalidToken
	}

	c := Claims{
		ID:        std.ID,
		Email:     priv.Email,
		Role:      priv.Role,
		ExpiresAt: std.Expiry.Time(),
	}

	if std.IssuedAt != nil {
		c.IssuedAt = std.IssuedAt.Time()
	}

	return c, nil
}
