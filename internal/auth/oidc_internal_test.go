package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFromClaims(t *testing.T) {
	yes, no := true, false

	p, err := profileFromClaims("sub-1", " ana@example.com ", &yes, "Ana", "https://img")
	require.NoError(t, err)
	assert.Equal(t, &Profile{Subject: "sub-1", Email: "ana@example.com", Name: "Ana", Picture: "https://img"}, p)

	p, err = profileFromClaims("sub-2", "bob@example.com", nil, "", "")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", p.Email)

	_, err = profileFromClaims("sub-3", "eve@example.com", &no, "", "")
	require.ErrorIs(t, err, ErrEmailNotVerified)

	_, err = profileFromClaims("sub-4", "  ", &yes, "", "")
	require.ErrorIs(t, err, ErrEmailMissing)
}

func TestGenerateStateToken(t *testing.T) {
	a, err := GenerateStateToken()
	require.NoError(t, err)

	b, err := GenerateStateToken()
	require.NoError(t, err)

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "=")
}
