package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// reuse the same rules gin evaluates during binding
	validate.SetTagName("binding")
}

// Validate returns a field -> failed-rule map for the struct, or nil
// when everything passes. Used to attach per-field details to binding
// error responses.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
