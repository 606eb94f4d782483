package app

import (
	"context"

	"github.com/shopspring/decimal"

	"hoppers-ops/internal/core"
)

// ApplicationService is the single interface all UI adapters (REPL, CLI)
// call. It decouples presentation from the ledgers. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// ── Inventory ──────────────────────────────────────────────────────────

	// GetInventory returns the derived stock list: per-product quantity and
	// last-updated time.
	GetInventory(ctx context.Context) (*InventoryResult, error)

	// GetCategories returns the distinct product categories for auto-suggest.
	GetCategories(ctx context.Context) ([]string, error)

	// AddItem registers a new product.
	AddItem(ctx context.Context, req AddItemRequest) (*core.Product, error)

	// AddStock logs a stock addition for a product.
	AddStock(ctx context.Context, req StockRequest) (*core.StockTransaction, error)

	// DeductStock logs a stock deduction. Refused with
	// core.InsufficientStockError when the requested quantity exceeds the
	// available total.
	DeductStock(ctx context.Context, req StockRequest) (*core.StockTransaction, error)

	// DeleteItem removes a product and its transaction history.
	DeleteItem(ctx context.Context, productID string) error

	// GetProductHistory returns a product's transactions, oldest first.
	GetProductHistory(ctx context.Context, productID string) ([]core.StockTransaction, error)

	// ── Expenses ───────────────────────────────────────────────────────────

	// ListExpenses returns all expense records with their group balances.
	ListExpenses(ctx context.Context) (*ExpenseListResult, error)

	// AddExpense records a purchase. An initial paid amount is also recorded
	// as the first payment event. Returns the created record; its ProductID
	// is the grouping key.
	AddExpense(ctx context.Context, req AddExpenseRequest) (*core.Expense, error)

	// PayBalance settles an amount against one expense entry. Refused with
	// core.OverpaymentError when the amount exceeds the entry's outstanding
	// balance. Returns the new outstanding balance.
	PayBalance(ctx context.Context, req PayRequest) (decimal.Decimal, error)

	// PayProductBalance settles an amount against a whole product group,
	// oldest entry first, with the same overpayment contract.
	PayProductBalance(ctx context.Context, req PayRequest) (decimal.Decimal, error)

	// DeleteExpense removes one expense record; payment history is kept.
	DeleteExpense(ctx context.Context, expenseID string) error

	// GetProductBalance returns the outstanding balance for a product group.
	GetProductBalance(ctx context.Context, productID string) (decimal.Decimal, error)

	// GetPayments returns the payment history for one expense entry.
	GetPayments(ctx context.Context, expenseID string) ([]core.Payment, error)

	// ── Orders ─────────────────────────────────────────────────────────────

	// CreateOrder places a food/table order, deducting stock for lines that
	// reference inventory products (all-or-nothing).
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*core.Order, error)

	// ListOrders returns orders; todayOnly restricts to today's.
	ListOrders(ctx context.Context, todayOnly bool) (*OrderListResult, error)

	// DeleteOrder removes an order.
	DeleteOrder(ctx context.Context, orderID string) error

	// ── Dashboard ──────────────────────────────────────────────────────────

	// GetTodaySummary returns today's expense/payment totals, the
	// whole-ledger outstanding balance, and today's order figures.
	GetTodaySummary(ctx context.Context) (*SummaryResult, error)
}
