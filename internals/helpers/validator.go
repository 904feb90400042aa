package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator/v10 on the request dto and maps the
// failures into the field-error shape used by JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		fieldErrors := map[string][]string{}
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
		} else {
			fieldErrors["_"] = []string{"invalid input"}
		}
		return fieldErrors
	}
	return nil
}
