// Package money isolates all monetary arithmetic behind decimal.Decimal so
// the representation can later be swapped (e.g. for integer minor units)
// without touching callers. Nothing outside this package may do float math
// on currency amounts.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts user input like "2500", "2,500" or "2500.50" into a decimal.
// An empty string parses to zero; that is what form fields submit when a
// payment or price box is left blank.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// Outstanding returns total - paid floored at zero. Balances reported to a
// caller are never negative, whatever the individual records say.
func Outstanding(total, paid decimal.Decimal) decimal.Decimal {
	out := total.Sub(paid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// LineTotal returns quantity × unit price for a purchase or order line.
func LineTotal(qty int64, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(qty).Mul(unitPrice)
}

// Format renders an amount with a currency label, e.g. "KSh 2450.00".
func Format(currency string, d decimal.Decimal) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	return currency + " " + d.StringFixed(2)
}
