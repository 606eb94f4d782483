package core

import (
	"time"

	"github.com/shopspring/decimal"

	"hoppers-ops/internal/money"
)

// Product is an inventory item registered by the add-item screen.
// Immutable after creation except by deletion, which cascades to its
// transaction history.
type Product struct {
	ID       string
	Name     string
	Category string
}

// StockTransaction is one signed entry in a product's append-only stock log.
// Positive quantity = stock added, negative = stock deducted. Entries are
// never edited; the current stock level is the fold-sum of a product's
// transactions.
type StockTransaction struct {
	ID        string
	ProductID string
	Quantity  int64
	Reason    string // optional, e.g. "Kitchen Usage", "Spoilage"
	Date      time.Time
}

// StockLevel is the derived per-product view shown on the inventory list:
// the fold of the transaction log plus the most recent activity date.
type StockLevel struct {
	ID       string
	Name     string
	Category string
	Quantity int64
	Updated  time.Time // zero when the product has no transactions
}

// Expense is one supplier purchase line-item. ProductID is the grouping key:
// repeated purchases of the same product share it, and the outstanding
// balance is folded per group. Paid is the amount settled against this
// record so far; it never exceeds TotalAmount.
type Expense struct {
	ID          string
	ProductID   string
	ProductName string
	Supplier    string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Paid        decimal.Decimal
	Date        time.Time
}

// Outstanding is this record's own unpaid remainder, floored at zero.
func (e Expense) Outstanding() decimal.Decimal {
	return money.Outstanding(e.TotalAmount, e.Paid)
}

// Payment is one settlement event against an expense. Payments are
// append-only history: they are never mutated and survive deletion of the
// expense they reference.
type Payment struct {
	ID        string
	ExpenseID string
	ProductID string
	Amount    decimal.Decimal
	PaidAt    time.Time
	Note      string
}

// OrderType distinguishes table service from takeaway.
type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeaway OrderType = "takeaway"
)

// OrderLine is one item on a food/table order.
type OrderLine struct {
	ProductID string // optional link to an inventory product
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// Order is a placed food/table order. Total is the fold of its line totals.
type Order struct {
	ID       string
	Employee string
	Type     OrderType
	Table    string // empty for takeaway
	Date     time.Time
	Lines    []OrderLine
	Total    decimal.Decimal
}

// TodaySummary is the dashboard aggregate. TotalExpense and TotalPaid cover
// records dated today; TotalOutstanding is the whole-ledger sum of group
// balances regardless of date.
type TodaySummary struct {
	TotalExpense     decimal.Decimal
	TotalPaid        decimal.Decimal
	TotalOutstanding decimal.Decimal
}

// sameDay reports whether two instants fall on the same calendar date,
// ignoring the time of day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
