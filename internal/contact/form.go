// Package contact validates contact form submissions, renders the
// notification emails and hands them to an email transport.
package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact form submission.
type Form struct {
	Name    string `json:"name"    form:"name"    validate:"required"`
	Email   string `json:"email"   form:"email"   validate:"required,emailshape"`
	Phone   string `json:"phone"   form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}

var validate = newValidator() //nolint:gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// Normalize trims all fields.
func (f *Form) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
}

// Validate normalizes f and returns ErrMissingFields or ErrInvalidEmail.
func (f *Form) Validate() error {
	f.Normalize()

	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return ErrMissingFields
		}
	}

	return ErrInvalidEmail
}
