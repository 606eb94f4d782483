package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Business-rule refusals are ordinary outcomes, not exceptions. Each carries
// the figures the caller needs to render a message, so adapters never parse
// error strings. Check with errors.As.

// InsufficientStockError is returned when a deduction exceeds the derived
// available quantity. The ledger is left untouched.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// OverpaymentError is returned when a payment exceeds the outstanding
// balance of its target. Nothing is recorded.
type OverpaymentError struct {
	Target      string // expense or product id
	Amount      decimal.Decimal
	Outstanding decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment %s exceeds outstanding balance %s for %s",
		e.Amount.StringFixed(2), e.Outstanding.StringFixed(2), e.Target)
}

// NotFoundError is returned by mutations that target an unknown record.
// Pure queries treat unknown ids as empty results instead.
type NotFoundError struct {
	Kind string // "product", "expense", "order"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ValidationError is returned when input fails a structural check before any
// mutation is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
