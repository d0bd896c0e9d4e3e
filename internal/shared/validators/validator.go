package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const (
	TagLogLevel  = "loglevel"
	TagSheetName = "sheetname"

	maxSheetNameLen = 31
)

// New creates a new validator instance with the project's custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagLogLevel, isLogLevel)
	_ = validate.RegisterValidation(TagSheetName, isSheetName)
	return validate
}

// isLogLevel accepts any level zerolog can parse.
func isLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}

// isSheetName enforces the spreadsheet sheet name rules: 1..31 chars, none of : \ / ? * [ ].
func isSheetName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || len([]rune(name)) > maxSheetNameLen {
		return false
	}
	return !strings.ContainsAny(name, `:\/?*[]`)
}
