// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const (
	// EnvConfigJSON holds a JSON document merged over the TOML configuration.
	EnvConfigJSON = "LENSFOLIO_CONFIG_JSON"

	// BackendDB stores content documents in the configured database.
	BackendDB = "db"
	// BackendSanity stores content documents in the hosted document store.
	BackendSanity = "sanity"

	minSessionSecretLen = 32
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	bindEnv(&c)

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Redacted returns a copy of c with every secret replaced by a marker.
func Redacted(c Config) Config {
	const marker = "[redacted]"

	for _, s := range []*string{
		&c.DB.Password,
		&c.Webserver.Session.Secret,
		&c.Auth.OIDC.ClientSecret,
		&c.Auth.LDAP.BindPassword,
		&c.Content.Token,
		&c.Gallery.AccessKey,
		&c.Mail.APIKey,
		&c.Log.DataDog.APIKey,
	} {
		if *s != "" {
			*s = marker
		}
	}

	return c
}

// validate checks the settings the service can not start without
// and fills defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 24 * time.Hour
	}

	if c.Webserver.Session.CookieName == "" {
		c.Webserver.Session.CookieName = "session"
	}

	if len(c.Webserver.Session.Secret) < minSessionSecretLen {
		return errors.Wrap(ErrSessionSecretTooShort, invalidErrMessage)
	}

	switch c.Content.Backend {
	case "":
		c.Content.Backend = BackendDB
	case BackendDB, BackendSanity:
	default:
		return errors.Wrap(ErrUnknownContentBackend, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = "sqlite"
	case "mysql", "postgres", "sqlite":
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	setDefaults(c)

	return nil
}

func setDefaults(c *Config) {
	if c.Content.Dataset == "" {
		c.Content.Dataset = "production"
	}

	if c.Content.APIVersion == "" {
		c.Content.APIVersion = "2024-01-01"
	}

	if c.Content.Timeout == 0 {
		c.Content.Timeout = 10 * time.Second
	}

	if c.Gallery.BaseURL == "" {
		c.Gallery.BaseURL = "https://api.unsplash.com"
	}

	if c.Gallery.PerPage == 0 {
		c.Gallery.PerPage = 30
	}

	if c.Gallery.Timeout == 0 {
		c.Gallery.Timeout = 10 * time.Second
	}

	if c.Gallery.CacheTTL == 0 {
		c.Gallery.CacheTTL = time.Hour
	}

	if c.Mail.Transport == "" {
		c.Mail.Transport = "resend"
	}

	if c.Mail.Timeout == 0 {
		c.Mail.Timeout = 15 * time.Second
	}

	if c.Auth.OIDC.ProviderURL == "" {
		c.Auth.OIDC.ProviderURL = "https://accounts.google.com"
	}

	if c.Auth.OIDC.RedirectURL == "" {
		c.Auth.OIDC.RedirectURL = c.Webserver.URL + "/admin/login/callback"
	}
}
