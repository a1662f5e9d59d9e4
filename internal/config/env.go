package config

import (
	"github.com/spf13/viper"
)

// bindEnv overrides secrets and deployment specific values from named
// environment variables. Empty variables leave the file value untouched.
func bindEnv(c *Config) {
	v := viper.New()

	bindings := map[string]*string{
		"SANITY_PROJECT_ID":    &c.Content.ProjectID,
		"SANITY_DATASET":       &c.Content.Dataset,
		"SANITY_API_TOKEN":     &c.Content.Token,
		"GOOGLE_CLIENT_ID":     &c.Auth.OIDC.ClientID,
		"GOOGLE_CLIENT_SECRET": &c.Auth.OIDC.ClientSecret,
		"SESSION_SECRET":       &c.Webserver.Session.Secret,
		"RESEND_API_KEY":       &c.Mail.APIKey,
		"ADMIN_EMAIL":          &c.Auth.AdminEmail,
		"UNSPLASH_ACCESS_KEY":  &c.Gallery.AccessKey,
		"UNSPLASH_USERNAME":    &c.Gallery.Username,
	}

	for name, target := range bindings {
		_ = v.BindEnv(name) //nolint:errcheck // only fails without a key

		if val := v.GetString(name); val != "" {
			*target = val
		}
	}
}
