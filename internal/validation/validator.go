package validation

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the custom tags registered. Field names in
// errors come from the env tag, then the json tag, then the Go name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	// Registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("origin", validateOrigin)
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"env", "json"} {
		name := strings.SplitN(f.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// validateOrigin accepts "*" or a bare http(s) origin such as
// https://example.com or http://localhost:3000
func validateOrigin(fl validator.FieldLevel) bool {
	origin := strings.TrimRight(fl.Field().String(), "/")
	if origin == "*" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && u.Path == "" && u.RawQuery == "" && u.Fragment == "" && u.User == nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

func (e ValidationError) String() string {
	if e.Value != "" {
		return fmt.Sprintf("%s failed %s=%s", e.Field, e.Tag, e.Value)
	}
	return fmt.Sprintf("%s failed %s", e.Field, e.Tag)
}

// FormatValidationError flattens validator errors into field/tag pairs.
// Errors of any other type yield nil.
func FormatValidationError(err error) []ValidationError {
	var errors []ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return errors
}

// Summary joins the formatted errors into one line
func Summary(err error) string {
	formatted := FormatValidationError(err)
	if len(formatted) == 0 {
		return err.Error()
	}

	parts := make([]string, len(formatted))
	for i, e := range formatted {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
