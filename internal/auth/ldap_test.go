package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/auth"
)

// fakeDirectory answers user searches from users (mail -> dn) and group
// searches from members.
type fakeDirectory struct {
	users     map[string][]string
	members   map[string]bool
	bindErr   error
	searchErr error
	groupErr  error
	binds     []string
	closed    bool
}

func (f *fakeDirectory) Bind(username, _ string) error {
	f.binds = append(f.binds, username)
	return f.bindErr
}

func (f *fakeDirectory) Search(req *ldap.SearchRequest) (*ldap.SearchResult, error) {
	if req.Scope == ldap.ScopeBaseObject {
		if f.groupErr != nil {
			return nil, f.groupErr
		}

		for dn := range f.members {
			if req.Filter == "(member="+ldap.EscapeFilter(dn)+")" && f.members[dn] {
				return &ldap.SearchResult{Entries: []*ldap.Entry{{DN: req.BaseDN}}}, nil
			}
		}

		return &ldap.SearchResult{}, nil
	}

	if f.searchErr != nil {
		return nil, f.searchErr
	}

	res := &ldap.SearchResult{}

	for mail, dns := range f.users {
		if req.Filter == "(mail="+mail+")" {
			for _, dn := range dns {
				res.Entries = append(res.Entries, &ldap.Entry{DN: dn})
			}
		}
	}

	return res, nil
}

func (f *fakeDirectory) Close() error {
	f.closed = true
	return nil
}

func newMembership(t *testing.T, dir *fakeDirectory, groupDN string) *auth.DirectoryMembership {
	t.Helper()

	m, err := auth.NewDirectoryMembership(auth.LDAPConfig{
		Enabled:      true,
		Host:         "ldap.example.com",
		Port:         389,
		BindDN:       "cn=svc,dc=example,dc=com",
		BindPassword: "secret",
		BaseDN:       "dc=example,dc=com",
		GroupDN:      groupDN,
	})
	require.NoError(t, err)

	return m.WithDialer(func(*auth.LDAPConfig) (auth.DirectoryConn, error) { return dir, nil })
}

func TestNewDirectoryMembershipDisabled(t *testing.T) {
	_, err := auth.NewDirectoryMembership(auth.LDAPConfig{})
	require.ErrorIs(t, err, auth.ErrLDAPDisabled)
}

func TestDirectoryMembership(t *testing.T) {
	const group = "cn=editors,ou=groups,dc=example,dc=com"

	dir := &fakeDirectory{
		users: map[string][]string{
			"ana@example.com": {"uid=ana,dc=example,dc=com"},
			"bob@example.com": {"uid=bob,dc=example,dc=com"},
			"dup@example.com": {"uid=d1,dc=example,dc=com", "uid=d2,dc=example,dc=com"},
		},
		members: map[string]bool{"uid=ana,dc=example,dc=com": true},
	}
	m := newMembership(t, dir, group)
	ctx := context.Background()

	ok, err := m.Authorize(ctx, "Ana@Example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, dir.closed)
	assert.Equal(t, []string{"cn=svc,dc=example,dc=com"}, dir.binds)

	ok, err = m.Authorize(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "user outside the group")

	ok, err = m.Authorize(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "unknown user")

	_, err = m.Authorize(ctx, "dup@example.com")
	require.ErrorIs(t, err, auth.ErrMultipleUsersFound)

	ok, err = m.Authorize(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectoryMembershipWithoutGroup(t *testing.T) {
	dir := &fakeDirectory{users: map[string][]string{"bob@example.com": {"uid=bob,dc=example,dc=com"}}}

	ok, err := newMembership(t, dir, "").Authorize(context.Background(), "bob@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDirectoryMembershipErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newMembership(t, &fakeDirectory{bindErr: errors.New("invalid credentials")}, "").
		Authorize(ctx, "a@example.com")
	require.Error(t, err)

	_, err = newMembership(t, &fakeDirectory{searchErr: errors.New("timeout")}, "").
		Authorize(ctx, "a@example.com")
	require.Error(t, err)

	dir := &fakeDirectory{
		users:    map[string][]string{"a@example.com": {"uid=a"}},
		groupErr: ldap.NewError(ldap.LDAPResultNoSuchObject, errors.New("no such object")),
	}
	ok, err := newMembership(t, dir, "cn=missing").Authorize(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	m, err := auth.NewDirectoryMembership(auth.LDAPConfig{Enabled: true})
	require.NoError(t, err)

	_, err = m.WithDialer(func(*auth.LDAPConfig) (auth.DirectoryConn, error) {
		return nil, errors.New("connection refused")
	}).Authorize(ctx, "a@example.com")
	require.Error(t, err)
}
