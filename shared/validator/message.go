package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var templates = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gt":       "{field} must be greater than {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"enum":     "{field} is not a recognised value",
	"date":     "{field} must be a date formatted YYYY-MM-DD",
	"month":    "{field} must be a month formatted YYYY-MM",
}

// message renders one line per failed field, in struct order. Unknown tags fall back
// to the validator's own wording for that field.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	lines := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := templates[valErr.Tag()]
		if !ok {
			lines = append(lines, valErr.Error())

			continue
		}

		lines = append(lines, strings.NewReplacer("{field}", valErr.Field(), "{param}", valErr.Param()).Replace(template))
	}

	return strings.Join(lines, messageSeparator)
}
