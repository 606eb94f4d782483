package app

import (
	"github.com/shopspring/decimal"

	"hoppers-ops/internal/core"
)

// InventoryResult is returned by GetInventory.
type InventoryResult struct {
	Levels []core.StockLevel
}

// ExpenseRow pairs an expense with the derived balances the list screen
// shows next to it.
type ExpenseRow struct {
	Expense      core.Expense
	Outstanding  decimal.Decimal // this entry's unpaid remainder
	GroupBalance decimal.Decimal // outstanding across the whole product group
}

// ExpenseListResult is returned by ListExpenses.
type ExpenseListResult struct {
	Rows []ExpenseRow
}

// OrderListResult is returned by ListOrders.
type OrderListResult struct {
	Orders []core.Order
}

// SummaryResult is returned by GetTodaySummary: the expense ledger's daily
// aggregate plus today's order figures for the dashboard.
type SummaryResult struct {
	Expenses    core.TodaySummary
	OrderCount  int
	OrdersTotal decimal.Decimal
}
