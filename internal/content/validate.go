package content

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/lensfolio/lensfolio/internal/imageurl"
)

// Warning is a soft validation finding. Warnings are shown in the editor and
// never block a save.
type Warning struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func documentValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// report fields by their json names, as the editor shows them
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("imageref", func(fl validator.FieldLevel) bool {
			_, err := imageurl.ParseRef(fl.Field().String())
			return err == nil
		})
	})

	return validate
}

// Validate checks doc against the editing rules of its type and returns the
// violations. A nil document yields no warnings.
func Validate(doc Document) []Warning {
	if doc == nil || reflect.ValueOf(doc).IsNil() {
		return nil
	}

	err := documentValidator().Struct(doc)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Warning{{Rule: "invalid", Message: err.Error()}}
	}

	warnings := make([]Warning, 0, len(verrs))

	for _, fe := range verrs {
		// drop the struct name, "Homepage.hero.title" -> "hero.title"
		_, field, _ := strings.Cut(fe.Namespace(), ".")

		warnings = append(warnings, Warning{
			Field:   field,
			Rule:    fe.Tag(),
			Message: message(field, fe),
		})
	}

	return warnings
}

func message(field string, fe validator.FieldError) string {
	many := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "len":
		return fmt.Sprintf("%s should have exactly %s items", field, fe.Param())
	case "max":
		if many {
			return fmt.Sprintf("%s should have at most %s items", field, fe.Param())
		}

		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		if many {
			return fmt.Sprintf("%s should have at least %s items", field, fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return field + " must be an email address"
	case "url":
		return field + " must be a URL"
	case "imageref":
		return field + " is not an image reference"
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
