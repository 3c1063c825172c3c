package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// camelCase json names read better as words: phoneNumber -> Phone Number
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// MapValidationError converts a binding failure into an AppError with a
// human-readable message. Only the first violation is reported.
func MapValidationError(err error) *AppError {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidArgument,
		"Invalid request body",
		http.StatusBadRequest,
	)
}
