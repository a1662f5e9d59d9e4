package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensfolio/lensfolio/internal/contact"
)

func TestFormValidate(t *testing.T) {
	tests := []struct {
		name string
		form contact.Form
		want error
	}{
		{"valid", contact.Form{Name: "Ana", Email: "ana@example.com", Message: "Hi"}, nil},
		{"valid with phone", contact.Form{Name: "Ana", Email: "ana@example.com", Phone: "+1 555", Message: "Hi"}, nil},
		{"missing name", contact.Form{Email: "ana@example.com", Message: "Hi"}, contact.ErrMissingFields},
		{"blank message", contact.Form{Name: "Ana", Email: "ana@example.com", Message: "   "}, contact.ErrMissingFields},
		{"missing email", contact.Form{Name: "Ana", Message: "Hi"}, contact.ErrMissingFields},
		{"no at", contact.Form{Name: "Ana", Email: "ana.example.com", Message: "Hi"}, contact.ErrInvalidEmail},
		{"no tld", contact.Form{Name: "Ana", Email: "ana@example", Message: "Hi"}, contact.ErrInvalidEmail},
		{"space", contact.Form{Name: "Ana", Email: "a na@example.com", Message: "Hi"}, contact.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.form

			err := f.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormNormalize(t *testing.T) {
	f := contact.Form{Name: " Ana ", Email: " ana@example.com\n", Message: "\tHi "}
	require.NoError(t, f.Validate())

	assert.Equal(t, contact.Form{Name: "Ana", Email: "ana@example.com", Message: "Hi"}, f)
}
