package utils

import "github.com/go-playground/validator/v10"

var Validate = validator.New()

// ValidationErrorMap flattens a validator error into a field -> failed-tag
// map suitable for the response envelope. Returns nil if err is not a
// validator error.
func ValidationErrorMap(err error) map[string]string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
