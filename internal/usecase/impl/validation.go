package impl

import (
	"fmt"

	domainerrors "curator/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput runs struct tag validation. The first failure is reported
// with the message registered for "Field.tag", or a generic one.
func validateInput(input any, messages map[string]string) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			return domainerrors.NewValidationError(msg)
		}
	}

	return domainerrors.NewValidationError(fmt.Sprintf("%s is invalid", fieldErrs[0].Field()))
}
