package dictionary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var errInvalidEntries = errors.New("invalid dictionary entries")

// IsWord reports whether s is one or more ASCII letters.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

// IsDefinition reports whether s is one or more ASCII letters or spaces.
func IsDefinition(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && s[i] != ' ' {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func newEntryValidator() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("definition", func(fl validator.FieldLevel) bool {
		return IsDefinition(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("failed to register definition validation: %w", err)
	}
	return validate, nil
}

// ValidateEntries checks that every entry has a word made of letters and a
// definition made of letters and spaces.
func ValidateEntries(entries []Entry) error {
	validate, err := newEntryValidator()
	if err != nil {
		return err
	}

	var messages []string
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			var validationErrors validator.ValidationErrors
			if !errors.As(err, &validationErrors) {
				return fmt.Errorf("validate.Struct() > %w", err)
			}
			for _, fe := range validationErrors {
				messages = append(messages, fmt.Sprintf("entries[%d].%s: failed on %q (value %q)", i, strings.ToLower(fe.Field()), fe.Tag(), fe.Value()))
			}
		}
	}
	if len(messages) > 0 {
		return fmt.Errorf("%w: %s", errInvalidEntries, strings.Join(messages, "; "))
	}
	return nil
}
