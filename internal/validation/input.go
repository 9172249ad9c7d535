package validation

import (
	"fmt"
	"strings"
	"unicode"

	"teller/internal/constants"
	"teller/internal/money"
)

// Validators take any so they can be passed straight to survey prompts
// (survey.WithValidator); huh inputs wrap them with StringValidator.

// ValidateAccountNumber checks the account number format only, not whether
// the account exists.
func ValidateAccountNumber(val any) error {
	number, ok := val.(string)
	if !ok {
		return fmt.Errorf("account number must be a string")
	}

	number = strings.TrimSpace(number)

	if number == "" {
		return fmt.Errorf("account number can't be empty")
	}

	if len(number) > constants.MaxAccountNumberLen {
		return fmt.Errorf("account number too long (max %d characters)", constants.MaxAccountNumberLen)
	}

	for _, r := range number {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("account number can contain only letters and digits")
		}
	}

	return nil
}

// ValidatePIN checks PIN shape, never PIN correctness.
func ValidatePIN(val any) error {
	pin, ok := val.(string)
	if !ok {
		return fmt.Errorf("PIN must be a string")
	}

	if len(pin) < constants.MinPINLen || len(pin) > constants.MaxPINLen {
		return fmt.Errorf("PIN must be %d to %d digits", constants.MinPINLen, constants.MaxPINLen)
	}

	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("PIN must contain only digits")
		}
	}

	return nil
}

// ValidateAmount accepts anything money.Parse accepts.
func ValidateAmount(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("amount must be a string")
	}

	_, err := money.Parse(input)
	return err
}

// StringValidator adapts an any-validator to the func(string) error shape
// huh inputs expect.
func StringValidator(fn func(any) error) func(string) error {
	return func(s string) error {
		return fn(s)
	}
}
