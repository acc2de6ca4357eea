package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

// convertValidationError normalizes validator errors into deckgen validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return deckerrors.NewValidationError(field, msg, err)
	}

	return deckerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the
// yaml path: "Outline.sections[1].title" becomes "sections[1].title".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForSection(index int, field string) string {
	return fmt.Sprintf("sections[%d].%s", index, field)
}
