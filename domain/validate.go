package domain

import (
	"sort"

	"github.com/asaskevich/govalidator"
)

// Validate runs the struct's `valid` tags and reports every failing field.
func Validate(v any) *AppError {
	if _, err := govalidator.ValidateStruct(v); err != nil {
		byField := govalidator.ErrorsByField(err)
		fields := make([]string, 0, len(byField))
		for field := range byField {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		messages := make([]string, 0, len(fields))
		for _, field := range fields {
			messages = append(messages, byField[field])
		}
		return BadRequest("Invalid request body", map[string]any{"errors": messages}).Wrap(err)
	}
	return nil
}
