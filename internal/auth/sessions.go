package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionKeyPrefix = "session:"
	stateKeyPrefix   = "oauth-state:"

	// StateTTL is how long an OAuth state token can be redeemed.
	StateTTL = 5 * time.Minute
)

// Sessions ties signed tokens to records in the session storage. A token is
// valid while its signature verifies, it is not expired and its record exists.
type Sessions struct {
	issuer  *TokenIssuer
	storage fiber.Storage
}

// NewSessions creates the session manager.
func NewSessions(issuer *TokenIssuer, storage fiber.Storage) *Sessions {
	return &Sessions{issuer: issuer, storage: storage}
}

// TTL returns the session lifetime.
func (s *Sessions) TTL() time.Duration {
	return s.issuer.TTL()
}

// Create issues a token for email and records its id.
func (s *Sessions) Create(email string) (string, Claims, error) {
	token, claims, err := s.issuer.Issue(email)
	if err != nil {
		return "", Claims{}, err
	}

	if err = s.storage.Set(sessionKeyPrefix+claims.ID, []byte(claims.Email), s.issuer.TTL()); err != nil {
		return "", Claims{}, err
	}

	return token, claims, nil
}

// Validate returns the claims of a live session token.
func (s *Sessions) Validate(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	claims, err := s.issuer.Verify(token)
	if err != nil {
		return Claims{}, err
	}

	rec, err := s.storage.Get(sessionKeyPrefix + claims.ID)
	if err != nil {
		return Claims{}, err
	}

	if len(rec) == 0 {
		return Claims{}, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke deletes the session record of token. Unverifiable tokens are ignored.
func (s *Sessions) Revoke(token string) error {
	claims, err := s.issuer.Verify(token)
	if err != nil {
		return nil //nolint:nilerr // nothing to revoke
	}

	return s.storage.Delete(sessionKeyPrefix + claims.ID)
}

// NewState creates and records a single use OAuth state token.
func (s *Sessions) NewState() (string, error) {
	state, err := GenerateStateToken()
	if err != nil {
		return "", err
	}

	if err = s.storage.Set(stateKeyPrefix+state, []byte{1}, StateTTL); err != nil {
		return "", err
	}

	return state, nil
}

// ConsumeState redeems state. It fails for unknown, expired or used states.
func (s *Sessions) ConsumeState(state string) error {
	if state == "" {
		return ErrInvalidState
	}

	rec, err := s.storage.Get(stateKeyPrefix + state)
	if err != nil {
		return err
	}

	if len(rec) == 0 {
		return ErrInvalidState
	}

	return s.storage.Delete(stateKeyPrefix + state)
}
