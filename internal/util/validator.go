package util

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nationalIDRe = regexp.MustCompile(`^[0-9]{11}$`)
)

// maxAmount caps a single transaction at ten million.
var maxAmount = decimal.NewFromInt(10_000_000)

// ValidateAmount rejects negative amounts, absurdly large ones and
// sub-cent precision. Amounts are stored at scale 2; anything finer
// would render differently from how it is summed.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("amount must have at most 2 decimal places, got %s", amount)
	}
	return nil
}

// ValidateEmail checks the basic shape of a login email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 128 || !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// ValidateNationalID expects the 11-digit form without punctuation.
func ValidateNationalID(id string) error {
	if !nationalIDRe.MatchString(id) {
		return fmt.Errorf("national id must be 11 digits, got %q", id)
	}
	return nil
}
