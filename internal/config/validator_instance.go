package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/deckgen/internal/notes"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
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

		_ = v.RegisterValidation("notes_style", func(fl validator.FieldLevel) bool {
			return isNotesStyle(fl.Field().String())
		})

		_ = v.RegisterValidation("slide_format", func(fl validator.FieldLevel) bool {
			return isSlideFormat(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func isNotesStyle(name string) bool {
	_, ok := notes.LookupStyle(name)
	return ok
}

func isSlideFormat(name string) bool {
	_, ok := notes.ParseFormat(name)
	return ok
}
