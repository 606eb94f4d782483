package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestExpenseLifecycle_PartialThenFullSettlement(t *testing.T) {
	l := NewExpenseLedger()

	sugar, err := l.AddExpense(ExpenseInput{
		ProductName: "Sugar",
		Supplier:    "Local Supplier",
		Quantity:    10,
		UnitPrice:   d("500"),
		Paid:        d("2000"),
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	if !sugar.TotalAmount.Equal(d("5000")) {
		t.Errorf("total = %s, want 5000", sugar.TotalAmount)
	}
	if got := l.ProductBalance(sugar.ProductID); !got.Equal(d("3000")) {
		t.Errorf("balance after creation = %s, want 3000", got)
	}

	left, err := l.PayBalance(sugar.ID, d("3000"), "settled")
	if err != nil {
		t.Fatalf("PayBalance: %v", err)
	}
	if !left.IsZero() {
		t.Errorf("outstanding after full payment = %s, want 0", left)
	}
	if got := l.ProductBalance(sugar.ProductID); !got.IsZero() {
		t.Errorf("balance after full payment = %s, want 0", got)
	}

	// A settled entry accepts no further payment, however small.
	_, err = l.PayBalance(sugar.ID, d("1"), "")
	var over *OverpaymentError
	if !errors.As(err, &over) {
		t.Fatalf("expected OverpaymentError, got %v", err)
	}
	if !over.Outstanding.IsZero() {
		t.Errorf("error carries outstanding = %s, want 0", over.Outstanding)
	}
	if got := l.ProductBalance(sugar.ProductID); !got.IsZero() {
		t.Errorf("balance changed by refused payment: %s", got)
	}
}

func TestExpenseOutstanding_FlooredAtZero(t *testing.T) {
	e := Expense{TotalAmount: d("100"), Paid: d("150")}
	if got := e.Outstanding(); !got.IsZero() {
		t.Errorf("Outstanding = %s for overpaid record, want 0", got)
	}
}

func TestAddExpense_ExplicitTotalWins(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{
		ProductName: "Flour",
		Quantity:    3,
		UnitPrice:   d("100"),
		TotalAmount: d("250"), // negotiated price, not qty × unit
	})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if !e.TotalAmount.Equal(d("250")) {
		t.Errorf("total = %s, want 250", e.TotalAmount)
	}
}

func TestAddExpense_Validation(t *testing.T) {
	l := NewExpenseLedger()

	tests := []struct {
		name  string
		input ExpenseInput
	}{
		{"negative quantity", ExpenseInput{ProductName: "X", Quantity: -1, UnitPrice: d("10")}},
		{"negative unit price", ExpenseInput{ProductName: "X", Quantity: 1, UnitPrice: d("-10")}},
		{"negative total", ExpenseInput{ProductName: "X", Quantity: 1, UnitPrice: d("10"), TotalAmount: d("-5")}},
		{"negative paid", ExpenseInput{ProductName: "X", Quantity: 1, UnitPrice: d("10"), Paid: d("-1")}},
		{"paid exceeds total", ExpenseInput{ProductName: "X", Quantity: 1, UnitPrice: d("10"), Paid: d("11")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.AddExpense(tt.input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
	if got := len(l.Expenses()); got != 0 {
		t.Errorf("%d expenses recorded despite refusals, want 0", got)
	}
}

func TestAddExpense_GroupsByNormalizedName(t *testing.T) {
	l := NewExpenseLedger()

	first, err := l.AddExpense(ExpenseInput{ProductName: "Sugar", Quantity: 1, UnitPrice: d("100")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	variants := []string{"sugar", " Sugar ", "SUGAR"}
	for _, name := range variants {
		e, err := l.AddExpense(ExpenseInput{ProductName: name, Quantity: 1, UnitPrice: d("100")})
		if err != nil {
			t.Fatalf("AddExpense(%q): %v", name, err)
		}
		if e.ProductID != first.ProductID {
			t.Errorf("%q grouped as %q, want %q", name, e.ProductID, first.ProductID)
		}
	}

	if got := l.ProductBalance(first.ProductID); !got.Equal(d("400")) {
		t.Errorf("group balance = %s, want 400", got)
	}
	if got := len(l.ExpensesByProduct(first.ProductID)); got != 4 {
		t.Errorf("group has %d entries, want 4", got)
	}
}

func TestAddExpense_NameFallsBackToDescription(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{Description: "Gas refill", Quantity: 1, UnitPrice: d("50")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if e.ProductName != "Gas refill" {
		t.Errorf("name = %q, want %q", e.ProductName, "Gas refill")
	}
	if e.ProductID != "gas-refill" {
		t.Errorf("product id = %q, want %q", e.ProductID, "gas-refill")
	}
}

func TestAddExpense_InitialPaidRecordedAsPayment(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{ProductName: "Rice", Quantity: 2, UnitPrice: d("100"), Paid: d("50")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	ps := l.PaymentsByExpense(e.ID)
	if len(ps) != 1 {
		t.Fatalf("payment history has %d entries, want 1", len(ps))
	}
	if !ps[0].Amount.Equal(d("50")) {
		t.Errorf("payment amount = %s, want 50", ps[0].Amount)
	}
	if ps[0].Note != "Initial recorded payment" {
		t.Errorf("payment note = %q", ps[0].Note)
	}
}

func TestAddExpense_ZeroPaidLeavesHistoryEmpty(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{ProductName: "Rice", Quantity: 2, UnitPrice: d("100")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if got := len(l.PaymentsByExpense(e.ID)); got != 0 {
		t.Errorf("payment history has %d entries, want 0", got)
	}
}

func TestPayBalance_Validation(t *testing.T) {
	l := NewExpenseLedger()

	var verr *ValidationError
	if _, err := l.PayBalance("whatever", decimal.Zero, ""); !errors.As(err, &verr) {
		t.Errorf("zero amount: got %v, want ValidationError", err)
	}

	var nf *NotFoundError
	if _, err := l.PayBalance("ghost", d("10"), ""); !errors.As(err, &nf) {
		t.Errorf("unknown expense: got %v, want NotFoundError", err)
	}
}

func TestPayProductBalance_WaterfallOldestFirst(t *testing.T) {
	l := NewExpenseLedger()

	base := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)
	current := base
	l.now = func() time.Time { return current }

	older, err := l.AddExpense(ExpenseInput{ProductName: "Charcoal", Quantity: 1, UnitPrice: d("1000")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	current = base.Add(time.Hour)
	newer, err := l.AddExpense(ExpenseInput{ProductName: "Charcoal", Quantity: 1, UnitPrice: d("800")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	left, err := l.PayProductBalance(older.ProductID, d("1300"), "part payment")
	if err != nil {
		t.Fatalf("PayProductBalance: %v", err)
	}
	if !left.Equal(d("500")) {
		t.Errorf("group outstanding = %s, want 500", left)
	}

	es := l.ExpensesByProduct(older.ProductID)
	byID := make(map[string]Expense, len(es))
	for _, e := range es {
		byID[e.ID] = e
	}
	if got := byID[older.ID].Paid; !got.Equal(d("1000")) {
		t.Errorf("oldest entry paid = %s, want 1000 (settled first)", got)
	}
	if got := byID[newer.ID].Paid; !got.Equal(d("300")) {
		t.Errorf("newer entry paid = %s, want 300", got)
	}
	for _, e := range es {
		if e.Paid.GreaterThan(e.TotalAmount) {
			t.Errorf("entry %s paid %s exceeds its total %s", e.ID, e.Paid, e.TotalAmount)
		}
	}

	// One payment record per touched entry, all stamped with the same time.
	var touched int
	for _, e := range es {
		touched += len(l.PaymentsByExpense(e.ID))
	}
	if touched != 2 {
		t.Errorf("%d payment records, want 2", touched)
	}
}

func TestPayProductBalance_OverpaymentRefusedWhole(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{ProductName: "Charcoal", Quantity: 1, UnitPrice: d("1000")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	_, err = l.PayProductBalance(e.ProductID, d("1001"), "")
	var over *OverpaymentError
	if !errors.As(err, &over) {
		t.Fatalf("expected OverpaymentError, got %v", err)
	}
	if !over.Outstanding.Equal(d("1000")) {
		t.Errorf("error carries outstanding = %s, want 1000", over.Outstanding)
	}
	if got := l.ProductBalance(e.ProductID); !got.Equal(d("1000")) {
		t.Errorf("balance changed by refused payment: %s", got)
	}
	if got := len(l.PaymentsByExpense(e.ID)); got != 0 {
		t.Errorf("%d payments recorded by refused group payment, want 0", got)
	}
}

func TestPayProductBalance_UnknownGroup(t *testing.T) {
	l := NewExpenseLedger()
	var nf *NotFoundError
	if _, err := l.PayProductBalance("ghost", d("10"), ""); !errors.As(err, &nf) {
		t.Errorf("got %v, want NotFoundError", err)
	}
}

func TestDeleteExpense_RetainsPaymentHistory(t *testing.T) {
	l := NewExpenseLedger()
	e, err := l.AddExpense(ExpenseInput{ProductName: "Rice", Quantity: 1, UnitPrice: d("200"), Paid: d("100")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	l.DeleteExpense(e.ID)

	if got := len(l.Expenses()); got != 0 {
		t.Errorf("%d expenses after delete, want 0", got)
	}
	if got := len(l.PaymentsByExpense(e.ID)); got != 1 {
		t.Errorf("payment history has %d entries after delete, want 1", got)
	}
	if got := l.ProductBalance(e.ProductID); !got.IsZero() {
		t.Errorf("balance of deleted group = %s, want 0", got)
	}

	// Unknown id is a no-op.
	l.DeleteExpense("ghost")
}

func TestTodaySummary_DatesAndOutstanding(t *testing.T) {
	l := NewExpenseLedger()

	yesterday := time.Date(2025, 11, 1, 18, 0, 0, 0, time.UTC)
	today := time.Date(2025, 11, 2, 8, 0, 0, 0, time.UTC)

	current := yesterday
	l.now = func() time.Time { return current }

	old, err := l.AddExpense(ExpenseInput{ProductName: "Sugar", Quantity: 10, UnitPrice: d("500"), Paid: d("2000")})
	if err != nil {
		t.Fatalf("AddExpense: %v", err)
	}

	current = today
	if _, err := l.AddExpense(ExpenseInput{ProductName: "Flour", Quantity: 1, UnitPrice: d("3000"), Paid: d("1000")}); err != nil {
		t.Fatalf("AddExpense: %v", err)
	}
	if _, err := l.PayBalance(old.ID, d("500"), ""); err != nil {
		t.Fatalf("PayBalance: %v", err)
	}

	s := l.TodaySummary()

	// Only today's purchase counts as expense; only today's payments count
	// as paid, including the one settled against yesterday's entry.
	if !s.TotalExpense.Equal(d("3000")) {
		t.Errorf("TotalExpense = %s, want 3000", s.TotalExpense)
	}
	if !s.TotalPaid.Equal(d("1500")) {
		t.Errorf("TotalPaid = %s, want 1500", s.TotalPaid)
	}
	// Outstanding spans the whole ledger: sugar 2500 + flour 2000.
	if !s.TotalOutstanding.Equal(d("4500")) {
		t.Errorf("TotalOutstanding = %s, want 4500", s.TotalOutstanding)
	}

	// The snapshot must agree with the per-group balances.
	sum := decimal.Zero
	seen := map[string]bool{}
	for _, e := range l.Expenses() {
		if !seen[e.ProductID] {
			seen[e.ProductID] = true
			sum = sum.Add(l.ProductBalance(e.ProductID))
		}
	}
	if !s.TotalOutstanding.Equal(sum) {
		t.Errorf("TotalOutstanding %s != Σ group balances %s", s.TotalOutstanding, sum)
	}
}

func TestExpenseQueries_UnknownIDsAreEmpty(t *testing.T) {
	l := NewExpenseLedger()
	if got := len(l.ExpensesByProduct("ghost")); got != 0 {
		t.Errorf("ExpensesByProduct = %d entries, want 0", got)
	}
	if got := len(l.PaymentsByExpense("ghost")); got != 0 {
		t.Errorf("PaymentsByExpense = %d entries, want 0", got)
	}
	if got := l.ProductBalance("ghost"); !got.IsZero() {
		t.Errorf("ProductBalance = %s, want 0", got)
	}
}
