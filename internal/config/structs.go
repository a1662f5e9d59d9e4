package config

import (
	"time"

	"github.com/lensfolio/lensfolio/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration // lifetime of an admin session token
	Secret     string        // HMAC key used to sign session tokens
	CookieName string        // name of the session cookie
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Content   Content
	Gallery   Gallery
	Mail      Mail
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Domain         string  // domain name for the webserver
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	Session        Session // session settings
}

// Auth holds the admin sign-in settings.
type Auth struct {
	AdminEmail string   // extra allow-listed address, usually from ADMIN_EMAIL
	AllowList  []string // email addresses allowed to sign in
	OIDC       OIDCAuth
	LDAP       LDAPAuth
}

// OIDCAuth holds the OpenID Connect client settings.
type OIDCAuth struct {
	ProviderURL  string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// LDAPAuth holds the optional directory membership settings.
type LDAPAuth struct {
	Enabled      bool
	Host         string
	Port         int
	UseSSL       bool
	UseTLS       bool
	SkipVerify   bool
	BindDN       string
	BindPassword string
	BaseDN       string
	MailAttr     string // attribute holding the user's mail address
	GroupDN      string // members of this group may sign in
	MemberAttr   string
	Timeout      int // seconds
}

// Content holds the document store settings.
type Content struct {
	Backend      string // "db" or "sanity"
	ProjectID    string
	Dataset      string
	Token        string
	APIVersion   string
	UseCDN       bool
	ImageBaseURL string
	Timeout      time.Duration
}

// Gallery holds the photo API settings.
type Gallery struct {
	AccessKey string
	Username  string
	BaseURL   string
	PerPage   int
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// Mail holds the contact mail settings.
type Mail struct {
	Transport        string // "resend" or "log"
	APIKey           string
	From             string
	To               []string
	Cc               []string
	SendConfirmation bool
	Timeout          time.Duration
}
