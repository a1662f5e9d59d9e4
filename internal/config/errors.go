package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrSessionSecretTooShort error if the session signing secret is shorter than 32 bytes.
	ErrSessionSecretTooShort = errors.New("session secret must be at least 32 bytes")

	// ErrUnknownContentBackend error if content.backend is neither db nor sanity.
	ErrUnknownContentBackend = errors.New("toml config content.backend must be db or sanity")

	// ErrUnknownGormEngine error if db.gormengine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be mysql, postgres or sqlite")
)
