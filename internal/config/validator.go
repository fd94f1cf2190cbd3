package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// messages overrides or adds English messages for the tags used by Config.
var messages = map[string]string{
	"readable_file": "{0} must be an existing and readable file",
	"hostname_port": "{0} must be a host:port address such as :7890",
	"required_with": "{0} is required when a database host is set",
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("readable_file", isReadableFile); err != nil {
		return nil, nil, fmt.Errorf("validate.RegisterValidation(readable_file) > %w", err)
	}

	for tag, message := range messages {
		if err := validate.RegisterTranslation(tag, trans, addMessage(tag, message), translateField); err != nil {
			return nil, nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", tag, err)
		}
	}
	return validate, trans, nil
}

func addMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, message, true)
	}
}

// translateField names the field by its dotted config key, such as seed.file.
func translateField(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."))
	if err != nil {
		return fe.Error()
	}
	return msg
}

// isReadableFile reports whether the path names a regular file this process can open.
func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
