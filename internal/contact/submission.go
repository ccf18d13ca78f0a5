package contact

import (
	"strings"

	"portfolio/internal/validation"
)

const (
	// DefaultName stands in when the visitor left both name fields blank
	DefaultName = "Website Visitor"
	// PreviewLength bounds the message echoed back in no-mail mode
	PreviewLength = 100
)

// Submission is one contact form post
type Submission struct {
	FirstName string
	LastName  string
	Email     string `validate:"required"`
	Message   string `validate:"required"`

	// Name is derived by Normalize
	Name string
}

var validate = validation.New()

// Normalize trims every field and derives the display name
func Normalize(s Submission) Submission {
	out := Submission{
		FirstName: strings.TrimSpace(s.FirstName),
		LastName:  strings.TrimSpace(s.LastName),
		Email:     strings.TrimSpace(s.Email),
		Message:   strings.TrimSpace(s.Message),
	}

	out.Name = strings.TrimSpace(out.FirstName + " " + out.LastName)
	if out.Name == "" {
		out.Name = DefaultName
	}
	return out
}

// Validate checks a normalized submission
func Validate(s Submission) error {
	if err := validate.Struct(s); err != nil {
		return ErrMissingFields
	}
	return nil
}
