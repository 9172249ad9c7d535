package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"teller/internal/constants"
)

// Parse converts user input like "150", "150.5" or "150.50" into a positive
// amount with at most two decimal places.
func Parse(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", input)
	}

	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}

	if amount.Exponent() < -2 {
		return decimal.Zero, fmt.Errorf("amount can have at most two decimal places")
	}

	if amount.GreaterThan(decimal.NewFromInt(constants.MaxAmountUnits)) {
		return decimal.Zero, fmt.Errorf("amount too large")
	}

	return amount, nil
}

// Format renders an amount with two decimal places and its currency code,
// e.g. "1500.00 USD".
func Format(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currency)
}
