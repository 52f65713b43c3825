package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xapes/xma-slots/internal/chain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for wallet addresses and transfer ids
	_ = v.RegisterValidation("wallet", validateWallet)
	_ = v.RegisterValidation("signature", validateSignature)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidateVar validates a single value against tag
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "wallet":
			errs[field] = "Invalid wallet address format"
		case "signature":
			errs[field] = "Invalid transaction signature format"
		case "len":
			errs[field] = fmt.Sprintf("Must contain exactly %s entries", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateWallet accepts base58 public keys. Empty values pass so that
// 'required' decides whether the field is mandatory.
func validateWallet(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	if addr == "" {
		return true
	}
	_, err := chain.ParseWallet(addr)
	return err == nil
}

// validateSignature accepts base58 transfer signatures
func validateSignature(fl validator.FieldLevel) bool {
	sig := fl.Field().String()
	if sig == "" {
		return true
	}
	_, err := chain.ParseSignature(sig)
	return err == nil
}
