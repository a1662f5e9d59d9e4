package auth

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Authorizer decides whether a verified email address may sign in.
type Authorizer interface {
	Authorize(ctx context.Context, email string) (bool, error)
}

// StaticAllowList accepts a fixed set of addresses, compared case-insensitively.
type StaticAllowList struct {
	emails map[string]struct{}
}

// NewStaticAllowList creates an allow-list. Empty entries are ignored.
func NewStaticAllowList(emails ...string) *StaticAllowList {
	l := &StaticAllowList{emails: make(map[string]struct{}, len(emails))}

	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			l.emails[e] = struct{}{}
		}
	}

	return l
}

// Authorize implements Authorizer.
func (l *StaticAllowList) Authorize(_ context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}

	_, ok := l.emails[email]

	return ok, nil
}

// Len returns the number of allowed addresses.
func (l *StaticAllowList) Len() int {
	return len(l.emails)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AnyOf grants access when one of its authorizers does. Errors of single
// authorizers are logged and treated as a refusal.
type AnyOf []Authorizer

// Authorize implements Authorizer.
func (a AnyOf) Authorize(ctx context.Context, email string) (bool, error) {
	for _, authz := range a {
		ok, err := authz.Authorize(ctx, email)
		if err != nil {
			log.Warn().Err(err).Msg("authorizer failed")
			continue
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}
