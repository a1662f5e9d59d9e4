package auth

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-ldap/ldap/v3"
	"github.com/rs/zerolog/log"
)

// ErrLDAPDisabled is returned when LDAP membership checks are disabled via configuration.
var ErrLDAPDisabled = errors.New("ldap membership is disabled")

// LDAPConfig holds the directory settings of the membership check.
type LDAPConfig struct {
	// Enabled indicates if the membership check is used.
	Enabled bool
	// Host is the LDAP server hostname or IP address.
	Host string
	// Port is the LDAP server port (typically 389 for LDAP, 636 for LDAPS).
	Port int
	// UseSSL enables LDAPS (LDAP over SSL/TLS).
	UseSSL bool
	// UseTLS enables StartTLS to upgrade an LDAP connection to TLS.
	UseTLS bool
	// SkipVerify skips TLS certificate verification (insecure, for testing only).
	SkipVerify bool
	// BindDN and BindPassword of the service account used for searches.
	BindDN       string
	BindPassword string
	// BaseDN is the base distinguished name for user searches.
	BaseDN string
	// MailAttr holds the user's email address (e.g. "mail").
	MailAttr string
	// GroupDN is the group whose members may sign in.
	GroupDN string
	// MemberAttr is the group attribute listing member DNs (e.g. "member", "uniqueMember").
	MemberAttr string
	// Timeout is the connection and search timeout in seconds.
	Timeout int
}

// DirectoryConn is the part of *ldap.Conn the membership check uses.
type DirectoryConn interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	Close() error
}

// Dialer opens directory connections.
type Dialer func(cfg *LDAPConfig) (DirectoryConn, error)

// DirectoryMembership authorizes members of an LDAP group.
type DirectoryMembership struct {
	config *LDAPConfig
	dial   Dialer
}

// NewDirectoryMembership creates the authorizer.
func NewDirectoryMembership(config LDAPConfig) (*DirectoryMembership, error) {
	if !config.Enabled {
		return nil, ErrLDAPDisabled
	}

	if config.MailAttr == "" {
		config.MailAttr = "mail"
	}

	if config.MemberAttr == "" {
		config.MemberAttr = "member"
	}

	if config.Timeout == 0 {
		config.Timeout = 10
	}

	return &DirectoryMembership{config: &config, dial: Connect}, nil
}

// WithDialer replaces the connection factory.
func (d *DirectoryMembership) WithDialer(dial Dialer) *DirectoryMembership {
	d.dial = dial
	return d
}

// Connect establishes a connection to the LDAP server.
func Connect(cfg *LDAPConfig) (DirectoryConn, error) {
	hostPort := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	ldapURL := "ldap://" + hostPort
	if cfg.UseSSL {
		ldapURL = "ldaps://" + hostPort
	}

	var tlsConfig *tls.Config
	if cfg.UseSSL || cfg.UseTLS {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: cfg.SkipVerify, //nolint:gosec // skipping verifying tls is ok
			ServerName:         cfg.Host,
		}
	}

	conn, err := ldap.DialURL(ldapURL,
		ldap.DialWithTLSConfig(tlsConfig),
		ldap.DialWithDialer(&net.Dialer{Timeout: time.Duration(cfg.Timeout) * time.Second}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LDAP server: %w", err)
	}

	// upgrade plain connections if requested
	if !cfg.UseSSL && cfg.UseTLS {
		if errStartTLS := conn.StartTLS(tlsConfig); errStartTLS != nil {
			if errClose := conn.Close(); errClose != nil {
				log.Error().Err(errClose).Msg("failed to close LDAP connection")
			}

			return nil, fmt.Errorf("failed to start TLS: %w", errStartTLS)
		}
	}

	if cfg.Timeout > 0 {
		conn.SetTimeout(time.Duration(cfg.Timeout) * time.Second)
	}

	return conn, nil
}

// Authorize implements Authorizer. Unknown addresses are refused without error.
func (d *DirectoryMembership) Authorize(_ context.Context, email string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, nil
	}

	conn, err := d.dial(d.config)
	if err != nil {
		return false, err
	}

	defer func() {
		if errClose := conn.Close(); errClose != nil {
			log.Warn().Err(errClose).Msg("failed to close LDAP connection")
		}
	}()

	if d.config.BindDN != "" {
		if err = conn.Bind(d.config.BindDN, d.config.BindPassword); err != nil {
			return false, fmt.Errorf("failed to bind with service account: %w", err)
		}
	}

	userDN, err := d.searchUserDN(conn, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return d.isMember(conn, userDN)
}

// searchUserDN finds the single entry with the given mail address.
func (d *DirectoryMembership) searchUserDN(conn DirectoryConn, email string) (string, error) {
	searchRequest := ldap.NewSearchRequest(
		d.config.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		d.config.Timeout,
		false,
		fmt.Sprintf("(%s=%s)", ldap.EscapeFilter(d.config.MailAttr), ldap.EscapeFilter(email)),
		[]string{"dn"},
		nil,
	)

	searchResult, err := conn.Search(searchRequest)
	if err != nil {
		return "", fmt.Errorf("failed to search for user: %w", err)
	}

	switch len(searchResult.Entries) {
	case 0:
		return "", ErrUserNotFound
	case 1:
		return searchResult.Entries[0].DN, nil
	default:
		return "", ErrMultipleUsersFound
	}
}

// isMember checks the group entry for the user DN.
func (d *DirectoryMembership) isMember(conn DirectoryConn, userDN string) (bool, error) {
	if d.config.GroupDN == "" {
		// without a group every directory user with the address is accepted
		return true, nil
	}

	searchRequest := ldap.NewSearchRequest(
		d.config.GroupDN,
		ldap.ScopeBaseObject,
		ldap.NeverDerefAliases,
		1,
		d.config.Timeout,
		false,
		fmt.Sprintf("(%s=%s)", ldap.EscapeFilter(d.config.MemberAttr), ldap.EscapeFilter(userDN)),
		[]string{"dn"},
		nil,
	)

	searchResult, err := conn.Search(searchRequest)
	if ldap.IsErrorWithCode(err, ldap.LDAPResultNoSuchObject) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to search for group membership: %w", err)
	}

	return len(searchResult.Entries) == 1, nil
}
