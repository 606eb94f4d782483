package core

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hoppers-ops/internal/money"
)

// ExpenseInput holds the fields accepted by the add-expense screen.
// ProductID and TotalAmount are optional: the grouping key is derived from
// the product name when absent, and the total defaults to
// Quantity × UnitPrice.
type ExpenseInput struct {
	ProductID   string
	ProductName string
	Supplier    string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Paid        decimal.Decimal
}

// ExpenseLedger records supplier purchases and the payments settled against
// them, and derives per-group outstanding balances. Expenses group by
// ProductID (a slug of the product name), so repeat purchases of the same
// product share one balance. Payments are append-only history; the PayBalance
// operations are the only mutators of an expense's Paid field.
type ExpenseLedger struct {
	mu       sync.Mutex
	expenses []Expense
	payments []Payment
	now      func() time.Time
}

// NewExpenseLedger returns an empty expense ledger.
func NewExpenseLedger() *ExpenseLedger {
	return &ExpenseLedger{now: time.Now}
}

// ── Mutations ─────────────────────────────────────────────────────────────────

// AddExpense records a purchase line-item. An initial Paid amount is itself
// recorded as a first payment event so the payment history stays complete;
// that side effect belongs to creation only and is not a payment path.
func (l *ExpenseLedger) AddExpense(input ExpenseInput) (*Expense, error) {
	name := trimOr(input.ProductName, trimOr(input.Description, "Product"))

	if input.Quantity < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if input.UnitPrice.IsNegative() {
		return nil, &ValidationError{Field: "unit_price", Reason: "must not be negative"}
	}
	if input.TotalAmount.IsNegative() {
		return nil, &ValidationError{Field: "total_amount", Reason: "must not be negative"}
	}
	if input.Paid.IsNegative() {
		return nil, &ValidationError{Field: "paid", Reason: "must not be negative"}
	}

	total := input.TotalAmount
	if total.IsZero() {
		total = money.LineTotal(input.Quantity, input.UnitPrice)
	}
	if input.Paid.GreaterThan(total) {
		return nil, &ValidationError{Field: "paid", Reason: "exceeds total amount of this record"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	productID := input.ProductID
	if productID == "" {
		productID = l.resolveProductID(name)
	}

	description := input.Description
	if description == "" {
		description = name
		if s := trimOr(input.Supplier, ""); s != "" {
			description = name + " - " + s
		}
	}

	e := Expense{
		ID:          uuid.NewString(),
		ProductID:   productID,
		ProductName: name,
		Supplier:    trimOr(input.Supplier, ""),
		Description: description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: total,
		Paid:        input.Paid,
		Date:        l.now(),
	}
	l.expenses = append(l.expenses, e)

	if input.Paid.IsPositive() {
		l.payments = append(l.payments, Payment{
			ID:        uuid.NewString(),
			ExpenseID: e.ID,
			ProductID: productID,
			Amount:    input.Paid,
			PaidAt:    e.Date,
			Note:      "Initial recorded payment",
		})
	}

	return &e, nil
}

// PayBalance settles amount against one expense entry. A payment exceeding
// the entry's outstanding balance is refused with OverpaymentError and
// nothing is recorded. Returns the entry's new outstanding balance.
func (l *ExpenseLedger) PayBalance(expenseID string, amount decimal.Decimal, note string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.expenses {
		if l.expenses[i].ID == expenseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return decimal.Zero, &NotFoundError{Kind: "expense", ID: expenseID}
	}

	entry := &l.expenses[idx]
	outstanding := entry.Outstanding()
	if amount.GreaterThan(outstanding) {
		return decimal.Zero, &OverpaymentError{Target: expenseID, Amount: amount, Outstanding: outstanding}
	}

	entry.Paid = entry.Paid.Add(amount)
	l.payments = append(l.payments, Payment{
		ID:        uuid.NewString(),
		ExpenseID: entry.ID,
		ProductID: entry.ProductID,
		Amount:    amount,
		PaidAt:    l.now(),
		Note:      note,
	})

	return entry.Outstanding(), nil
}

// PayProductBalance settles amount against a whole group, oldest entry
// first. A payment exceeding the group's outstanding balance is refused in
// full; partially applying was never an option.
func (l *ExpenseLedger) PayProductBalance(productID string, amount decimal.Decimal, note string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var group []*Expense
	for i := range l.expenses {
		if l.expenses[i].ProductID == productID {
			group = append(group, &l.expenses[i])
		}
	}
	if len(group) == 0 {
		return decimal.Zero, &NotFoundError{Kind: "product", ID: productID}
	}
	sort.SliceStable(group, func(i, j int) bool { return group[i].Date.Before(group[j].Date) })

	outstanding := decimal.Zero
	for _, e := range group {
		outstanding = outstanding.Add(e.Outstanding())
	}
	if amount.GreaterThan(outstanding) {
		return decimal.Zero, &OverpaymentError{Target: productID, Amount: amount, Outstanding: outstanding}
	}

	paidAt := l.now()
	remaining := amount
	for _, e := range group {
		if remaining.IsZero() {
			break
		}
		slice := e.Outstanding()
		if slice.IsZero() {
			continue
		}
		if slice.GreaterThan(remaining) {
			slice = remaining
		}
		e.Paid = e.Paid.Add(slice)
		l.payments = append(l.payments, Payment{
			ID:        uuid.NewString(),
			ExpenseID: e.ID,
			ProductID: productID,
			Amount:    slice,
			PaidAt:    paidAt,
			Note:      note,
		})
		remaining = remaining.Sub(slice)
	}

	return outstanding.Sub(amount), nil
}

// DeleteExpense removes one record. Payments referencing it are retained as
// history; balances fold over live expenses only, so they stop counting.
// Unknown ids are a no-op.
func (l *ExpenseLedger) DeleteExpense(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.expenses[:0]
	for _, e := range l.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	l.expenses = kept
}

// ── Queries ───────────────────────────────────────────────────────────────────

// Expenses returns all records in insertion order.
func (l *ExpenseLedger) Expenses() []Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// ExpensesByProduct returns the group for a product id, empty when unknown.
func (l *ExpenseLedger) ExpensesByProduct(productID string) []Expense {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Expense
	for _, e := range l.expenses {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out
}

// PaymentsByExpense returns the payment history for one expense entry.
func (l *ExpenseLedger) PaymentsByExpense(expenseID string) []Payment {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []Payment
	for _, p := range l.payments {
		if p.ExpenseID == expenseID {
			out = append(out, p)
		}
	}
	return out
}

// ProductBalance returns max(Σ total_amount − Σ paid, 0) over the group.
func (l *ExpenseLedger) ProductBalance(productID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance(productID)
}

// TodaySummary reports today's expense and payment totals alongside the
// whole-ledger outstanding balance. TotalOutstanding deliberately ignores
// dates: it is a snapshot of everything still owed, shown next to the
// same-day figures.
func (l *ExpenseLedger) TodaySummary() TodaySummary {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now()
	s := TodaySummary{
		TotalExpense:     decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}

	for _, e := range l.expenses {
		if sameDay(e.Date, today) {
			s.TotalExpense = s.TotalExpense.Add(e.TotalAmount)
		}
	}
	for _, p := range l.payments {
		if sameDay(p.PaidAt, today) {
			s.TotalPaid = s.TotalPaid.Add(p.Amount)
		}
	}

	seen := make(map[string]bool)
	for _, e := range l.expenses {
		if !seen[e.ProductID] {
			seen[e.ProductID] = true
			s.TotalOutstanding = s.TotalOutstanding.Add(l.balance(e.ProductID))
		}
	}
	return s
}

// ── internals ─────────────────────────────────────────────────────────────────

// balance folds the group for productID. Callers hold l.mu.
func (l *ExpenseLedger) balance(productID string) decimal.Decimal {
	total := decimal.Zero
	paid := decimal.Zero
	for _, e := range l.expenses {
		if e.ProductID == productID {
			total = total.Add(e.TotalAmount)
			paid = paid.Add(e.Paid)
		}
	}
	return money.Outstanding(total, paid)
}

// resolveProductID returns the grouping key for a product name: the key of
// an existing group whose name or description slugs the same, else the slug
// itself, else a generated id for unsluggable names. Callers hold l.mu.
func (l *ExpenseLedger) resolveProductID(name string) string {
	norm := slugify(name)
	if norm == "" {
		return "P-" + uuid.NewString()
	}
	for _, e := range l.expenses {
		if slugify(e.ProductName) == norm || slugify(e.Description) == norm {
			return e.ProductID
		}
	}
	return norm
}

func trimOr(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}
