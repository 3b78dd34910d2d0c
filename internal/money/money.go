// Package money parses and validates monetary amounts at the API edge.
// Amounts are exact fixed-point decimals: at most 2 fractional digits
// and at most 10 digits overall, matching the numeric(10,2) columns.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/wallet-server/internal/faults"
)

// MaxAmount is the largest representable amount (10 digits, 2 fractional).
var MaxAmount = decimal.RequireFromString("99999999.99")

// ParsePositiveAmount parses a decimal string and validates it as a
// strictly positive amount. The field name is carried into the fault so
// the caller can tell which input was rejected.
func ParsePositiveAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, faults.InvalidArgument(field, "amount must be a decimal number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, faults.InvalidArgument(field, "amount must be a positive number")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, faults.InvalidArgument(field, "amount must have at most 2 decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return decimal.Zero, faults.InvalidArgument(field, "amount must have at most 10 digits")
	}
	return amount, nil
}
