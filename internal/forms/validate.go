package forms

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return isGenre(fl.Field().String())
	})
	_ = validate.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return isState(fl.Field().String())
	})
}

// Validate checks v against its struct tags, including the genre and state
// choice lists.
func Validate(v any) error {
	return validate.Struct(v)
}
