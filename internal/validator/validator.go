package validator

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/seat-allocator/internal/seatcode"
)

const (
	ErrRequired   = "is required"
	ErrMinValue   = "must be at least %s"
	ErrMaxValue   = "must be at most %s"
	ErrMinItems   = "must contain at least %s item(s)"
	ErrMaxItems   = "must contain at most %s item(s)"
	ErrOneOf      = "must be one of: %s"
	ErrSeatCode   = "must be a seat code such as R1C4"
	ErrInvalidVal = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_code", validateSeatCode)

	return validator
}

func validateSeatCode(fl validator.FieldLevel) bool {
	return seatcode.Valid(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	collection := err.Kind() == reflect.Slice || err.Kind() == reflect.Array || err.Kind() == reflect.Map

	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		if collection {
			return fmt.Sprintf(ErrMinItems, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if collection {
			return fmt.Sprintf(ErrMaxItems, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "seat_code":
		return ErrSeatCode
	default:
		return ErrInvalidVal
	}
}
