package utils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldErrors is the wire shape for rejected writes: field name mapped
// to a list of messages.
type FieldErrors map[string][]string

func NewFieldErrors(field, message string) FieldErrors {
	return FieldErrors{field: {message}}
}

// ValidationErrors converts a binding failure into FieldErrors. Field
// names come from the json tag (see the tag-name func registered at
// startup); anything that is not a per-field failure lands under
// non_field_errors.
func ValidationErrors(err error) FieldErrors {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"non_field_errors": {err.Error()}}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fieldErrorMessage(fe))
	}
	return out
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "decimal":
		return "A valid number is required."
	case "dateonly":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "uuid":
		return "Must be a valid UUID."
	default:
		return "This value is not valid."
	}
}
