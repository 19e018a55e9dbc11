package service

import (
	"errors"
	"fmt"

	"go-warehouse-ws/pkg/validator"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaleNotRecorded   = errors.New("sale record was not added")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("current password is incorrect")
	ErrUnknownRole       = errors.New("unknown role")
)

// validate runs struct validation and folds the first failure into ErrValidation.
func validate(req interface{}) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	return fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, first.FailedField, first.Tag)
}
