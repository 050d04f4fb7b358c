package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var validate = validator.New()

func init() {
	// uuid_required rejects the zero UUID on required uuid.UUID fields.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct checks validate tags and returns one entry per violation.
func ValidateStruct(data interface{}) []FieldError {
	var fieldErrors []FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Message: fe.Error(),
			})
		}
	}
	return fieldErrors
}
