package repl

import (
	"fmt"
	"strings"
	"time"

	"hoppers-ops/internal/app"
	"hoppers-ops/internal/core"
	"hoppers-ops/internal/money"
)

const dateFormat = "2006-01-02 15:04"

func printHelp() {
	fmt.Println(`Inventory:
  inventory                         current stock list
  history <product-id>              stock transaction log
  add-item                          register a product (wizard)
  add-stock <id> <qty> [reason]     log a stock addition
  deduct <id> <qty> [reason]        log a stock deduction
  delete-item <id>                  remove product and history
Expenses:
  expenses                          expense list with balances
  add-expense                       record a purchase (wizard)
  pay <expense-id> <amount> [note]  pay against one entry
  pay-product <group> <amount>      pay against a product group
  payments <expense-id>             payment history for an entry
  balance <group>                   outstanding balance for a group
  delete-expense <expense-id>       remove an entry (history kept)
Orders:
  orders [today]                    list orders
  new-order                         place an order (wizard)
  delete-order <order-id>           remove an order
Other:
  summary                           today's overview
  exit`)
}

func printInventory(result *app.InventoryResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Println("  INVENTORY")
	fmt.Println(strings.Repeat("=", 66))
	if len(result.Levels) == 0 {
		fmt.Println("  No products registered.")
		fmt.Println(strings.Repeat("=", 66))
		return
	}
	fmt.Printf("  %-6s %-22s %-14s %8s  %s\n", "ID", "NAME", "CATEGORY", "QTY", "UPDATED")
	fmt.Println(strings.Repeat("-", 66))
	for _, sl := range result.Levels {
		updated := "N/A"
		if !sl.Updated.IsZero() {
			updated = sl.Updated.Format(dateFormat)
		}
		fmt.Printf("  %-6s %-22s %-14s %8d  %s\n", sl.ID, sl.Name, sl.Category, sl.Quantity, updated)
	}
	fmt.Println(strings.Repeat("=", 66))
}

func printHistory(productID string, txs []core.StockTransaction) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  STOCK LOG — %s\n", productID)
	fmt.Println(strings.Repeat("=", 66))
	if len(txs) == 0 {
		fmt.Println("  No transactions.")
		fmt.Println(strings.Repeat("=", 66))
		return
	}
	fmt.Printf("  %-17s %8s  %s\n", "DATE", "QTY", "REASON")
	fmt.Println(strings.Repeat("-", 66))
	var running int64
	for _, tx := range txs {
		running += tx.Quantity
		fmt.Printf("  %-17s %+8d  %s\n", tx.Date.Format(dateFormat), tx.Quantity, tx.Reason)
	}
	fmt.Println(strings.Repeat("-", 66))
	fmt.Printf("  %-17s %8d\n", "TOTAL", running)
	fmt.Println(strings.Repeat("=", 66))
}

func printExpenses(result *app.ExpenseListResult, currency string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 96))
	fmt.Println("  EXPENSES")
	fmt.Println(strings.Repeat("=", 96))
	if len(result.Rows) == 0 {
		fmt.Println("  No expenses recorded.")
		fmt.Println(strings.Repeat("=", 96))
		return
	}
	fmt.Printf("  %-10s %-24s %-16s %10s %10s %10s %10s\n",
		"GROUP", "DESCRIPTION", "SUPPLIER", "TOTAL", "PAID", "DUE", "GROUP DUE")
	fmt.Println(strings.Repeat("-", 96))
	for _, row := range result.Rows {
		e := row.Expense
		fmt.Printf("  %-10s %-24s %-16s %10s %10s %10s %10s\n",
			truncate(e.ProductID, 10), truncate(e.Description, 24), truncate(e.Supplier, 16),
			e.TotalAmount.StringFixed(2), e.Paid.StringFixed(2),
			row.Outstanding.StringFixed(2), row.GroupBalance.StringFixed(2))
		fmt.Printf("    id %s  (%s)\n", e.ID, e.Date.Format(dateFormat))
	}
	fmt.Println(strings.Repeat("=", 96))
	fmt.Printf("  Amounts in %s\n", currency)
}

func printPayments(expenseID string, payments []core.Payment, currency string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 66))
	fmt.Printf("  PAYMENTS — expense %s\n", expenseID)
	fmt.Println(strings.Repeat("=", 66))
	if len(payments) == 0 {
		fmt.Println("  No payments recorded.")
		fmt.Println(strings.Repeat("=", 66))
		return
	}
	fmt.Printf("  %-17s %12s  %s\n", "PAID AT", "AMOUNT", "NOTE")
	fmt.Println(strings.Repeat("-", 66))
	for _, p := range payments {
		fmt.Printf("  %-17s %12s  %s\n", p.PaidAt.Format(dateFormat), money.Format(currency, p.Amount), p.Note)
	}
	fmt.Println(strings.Repeat("=", 66))
}

func printOrders(result *app.OrderListResult, currency string, todayOnly bool) {
	title := "ORDERS"
	if todayOnly {
		title = "TODAY'S ORDERS"
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 80))
	if len(result.Orders) == 0 {
		fmt.Println("  No orders.")
		fmt.Println(strings.Repeat("=", 80))
		return
	}
	for _, o := range result.Orders {
		loc := string(o.Type)
		if o.Table != "" {
			loc = fmt.Sprintf("%s, table %s", o.Type, o.Table)
		}
		fmt.Printf("  %-14s %-17s %-24s %12s\n",
			o.ID, o.Date.Format(dateFormat), fmt.Sprintf("%s (%s)", o.Employee, loc),
			money.Format(currency, o.Total))
		for _, l := range o.Lines {
			fmt.Printf("      %dx %-24s @ %10s = %s\n",
				l.Quantity, truncate(l.Name, 24), l.UnitPrice.StringFixed(2), l.LineTotal.StringFixed(2))
		}
	}
	fmt.Println(strings.Repeat("=", 80))
}

func printSummary(result *app.SummaryResult, currency string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 54))
	fmt.Printf("  TODAY'S OVERVIEW — %s\n", time.Now().Format("Mon 02 Jan 2006"))
	fmt.Println(strings.Repeat("=", 54))
	fmt.Printf("  Orders          %6d   %s\n", result.OrderCount, money.Format(currency, result.OrdersTotal))
	fmt.Printf("  Expenses today  %s\n", money.Format(currency, result.Expenses.TotalExpense))
	fmt.Printf("  Paid today      %s\n", money.Format(currency, result.Expenses.TotalPaid))
	fmt.Printf("  Outstanding     %s   (all groups, all dates)\n",
		money.Format(currency, result.Expenses.TotalOutstanding))
	fmt.Println(strings.Repeat("=", 54))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
