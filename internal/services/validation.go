package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fyyurtrivia/pkg/utils"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks struct tags and reports failures as utils.ErrValidation.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", utils.ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}
	return nil
}

// storeError logs a persistence failure and converts it to a service sentinel.
func storeError(log *zap.Logger, op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, utils.ErrConflict)
	}
	log.Error(op, zap.Error(err))
	return fmt.Errorf("%s: %w", op, utils.ErrDatabaseError)
}
