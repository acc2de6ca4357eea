package theme

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("placeholder_style", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
			case PlaceholderLight, PlaceholderDark, PlaceholderThemed:
				return true
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the structure of the request. Color values are parsed
// later and fail with a MalformedColorError.
func (r CustomStyleRequest) Validate() error {
	if err := validatorInstance().Struct(r); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return deckerrors.NewValidationError(field, msg, err)
	}

	return deckerrors.NewValidationError("custom_style", err.Error(), err)
}
