package config

import (
	"errors"
	"strings"

	deckerrors "github.com/alexisbeaulieu97/deckgen/pkg/errors"
)

// ValidateApp checks an application configuration.
func ValidateApp(cfg *App) error {
	if cfg == nil {
		return deckerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidateOutline performs structural and cross-field validation on an outline.
func ValidateOutline(o *Outline) error {
	if o == nil {
		return deckerrors.NewValidationError("outline", "outline is nil", nil)
	}
	if err := validatorInstance().Struct(o); err != nil {
		return convertValidationError(err)
	}

	for i, section := range o.Sections {
		for _, fact := range section.Facts {
			if strings.TrimSpace(fact) == "" {
				return deckerrors.NewValidationError(fieldForSection(i, "facts"), "facts must not be blank", nil)
			}
		}
	}

	if o.CustomStyle != nil {
		if err := o.CustomStyle.Validate(); err != nil {
			var ve *deckerrors.ValidationError
			if errors.As(err, &ve) {
				return deckerrors.NewValidationError("custom_style."+ve.Field, ve.Message, ve.Err)
			}
			return err
		}
	}

	return nil
}
