// Package repl implements the interactive terminal screens: inventory list,
// stock forms, expense list, pay-balance, orders, and the daily summary.
// All business behaviour lives behind app.ApplicationService; this package
// only reads input and prints tables.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"hoppers-ops/internal/app"
	"hoppers-ops/internal/core"
	"hoppers-ops/internal/money"
)

// Run starts the interactive loop, reading commands from reader until
// exit/quit or EOF.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, currency string) {
	fmt.Println("Hoppers Hotel & Butchery — operations console")
	fmt.Println("Type 'help' for commands.")
	fmt.Println(strings.Repeat("-", 70))

	for {
		fmt.Print("\n> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		tokens := strings.Fields(input)
		cmd := strings.ToLower(strings.TrimPrefix(tokens[0], "/"))
		args := tokens[1:]

		if cmd == "exit" || cmd == "quit" {
			return
		}
		if err := dispatch(ctx, svc, reader, currency, cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func dispatch(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader,
	currency, cmd string, args []string) error {

	switch cmd {
	case "help":
		printHelp()

	case "inventory", "inv":
		result, err := svc.GetInventory(ctx)
		if err != nil {
			return err
		}
		printInventory(result)

	case "history":
		if len(args) < 1 {
			fmt.Println("Usage: history <product-id>")
			return nil
		}
		txs, err := svc.GetProductHistory(ctx, args[0])
		if err != nil {
			return err
		}
		printHistory(args[0], txs)

	case "add-item":
		return handleAddItem(ctx, reader, svc)

	case "add-stock":
		return handleStockChange(ctx, svc, args, true)

	case "deduct":
		return handleStockChange(ctx, svc, args, false)

	case "delete-item":
		if len(args) < 1 {
			fmt.Println("Usage: delete-item <product-id>")
			return nil
		}
		if err := svc.DeleteItem(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Item deleted (including its stock history).")

	case "expenses", "exp":
		result, err := svc.ListExpenses(ctx)
		if err != nil {
			return err
		}
		printExpenses(result, currency)

	case "add-expense":
		return handleAddExpense(ctx, reader, svc, currency)

	case "pay":
		return handlePay(ctx, svc, args, currency, false)

	case "pay-product":
		return handlePay(ctx, svc, args, currency, true)

	case "payments":
		if len(args) < 1 {
			fmt.Println("Usage: payments <expense-id>")
			return nil
		}
		payments, err := svc.GetPayments(ctx, args[0])
		if err != nil {
			return err
		}
		printPayments(args[0], payments, currency)

	case "balance":
		if len(args) < 1 {
			fmt.Println("Usage: balance <product-id>")
			return nil
		}
		bal, err := svc.GetProductBalance(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Outstanding balance for %s: %s\n", args[0], money.Format(currency, bal))

	case "delete-expense":
		if len(args) < 1 {
			fmt.Println("Usage: delete-expense <expense-id>")
			return nil
		}
		if err := svc.DeleteExpense(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Expense deleted. Payment history kept.")

	case "orders":
		todayOnly := len(args) > 0 && strings.EqualFold(args[0], "today")
		result, err := svc.ListOrders(ctx, todayOnly)
		if err != nil {
			return err
		}
		printOrders(result, currency, todayOnly)

	case "new-order":
		return handleNewOrder(ctx, reader, svc, currency)

	case "delete-order":
		if len(args) < 1 {
			fmt.Println("Usage: delete-order <order-id>")
			return nil
		}
		if err := svc.DeleteOrder(ctx, args[0]); err != nil {
			return err
		}
		fmt.Println("Order deleted.")

	case "summary":
		result, err := svc.GetTodaySummary(ctx)
		if err != nil {
			return err
		}
		printSummary(result, currency)

	default:
		fmt.Printf("Unknown command: %s (try 'help')\n", cmd)
	}
	return nil
}

func handleStockChange(ctx context.Context, svc app.ApplicationService, args []string, add bool) error {
	verb := "deduct"
	if add {
		verb = "add-stock"
	}
	if len(args) < 2 {
		fmt.Printf("Usage: %s <product-id> <qty> [reason...]\n", verb)
		return nil
	}
	qty, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a whole number: %w", err)
	}
	reason := strings.Join(args[2:], " ")

	req := app.StockRequest{ProductID: args[0], Quantity: qty, Reason: reason}
	if add {
		tx, err := svc.AddStock(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Stock added: +%d for %s\n", tx.Quantity, tx.ProductID)
		return nil
	}

	tx, err := svc.DeductStock(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Stock deducted: %d for %s\n", tx.Quantity, tx.ProductID)
	return nil
}

func handlePay(ctx context.Context, svc app.ApplicationService, args []string, currency string, group bool) error {
	usage := "pay <expense-id> <amount> [note...]"
	if group {
		usage = "pay-product <product-id> <amount> [note...]"
	}
	if len(args) < 2 {
		fmt.Println("Usage: " + usage)
		return nil
	}
	amount, err := money.Parse(args[1])
	if err != nil {
		return err
	}

	req := app.PayRequest{Target: args[0], Amount: amount, Note: strings.Join(args[2:], " ")}
	var outstanding = amount
	if group {
		outstanding, err = svc.PayProductBalance(ctx, req)
	} else {
		outstanding, err = svc.PayBalance(ctx, req)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Payment recorded. New outstanding: %s\n", money.Format(currency, outstanding))
	return nil
}

// ── Wizards ───────────────────────────────────────────────────────────────────

func handleAddItem(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService) error {
	id := prompt(reader, "Product id: ")
	name := prompt(reader, "Name: ")

	if cats, err := svc.GetCategories(ctx); err == nil && len(cats) > 0 {
		fmt.Printf("Known categories: %s\n", strings.Join(cats, ", "))
	}
	category := prompt(reader, "Category: ")

	p, err := svc.AddItem(ctx, app.AddItemRequest{ID: id, Name: name, Category: category})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s (%s).\n", p.Name, p.ID)
	return nil
}

func handleAddExpense(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, currency string) error {
	name := prompt(reader, "Product name: ")
	supplier := prompt(reader, "Supplier: ")

	qty, err := strconv.ParseInt(promptOr(reader, "Quantity: ", "0"), 10, 64)
	if err != nil {
		return fmt.Errorf("quantity must be a whole number: %w", err)
	}
	unitPrice, err := money.Parse(promptOr(reader, "Unit price: ", "0"))
	if err != nil {
		return err
	}
	paid, err := money.Parse(promptOr(reader, "Paid now (blank for none): ", "0"))
	if err != nil {
		return err
	}

	e, err := svc.AddExpense(ctx, app.AddExpenseRequest{
		ProductName: name,
		Supplier:    supplier,
		Quantity:    qty,
		UnitPrice:   unitPrice,
		Paid:        paid,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Expense recorded: %s, total %s, outstanding %s (group %s)\n",
		e.Description, money.Format(currency, e.TotalAmount),
		money.Format(currency, e.Outstanding()), e.ProductID)
	return nil
}

func handleNewOrder(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, currency string) error {
	employee := promptOr(reader, "Employee: ", "Staff")
	orderType := core.OrderDineIn
	table := ""
	if strings.EqualFold(promptOr(reader, "Type (dine-in/takeaway) [dine-in]: ", "dine-in"), string(core.OrderTakeaway)) {
		orderType = core.OrderTakeaway
	} else {
		table = prompt(reader, "Table: ")
	}

	var lines []app.OrderLineInput
	fmt.Println("Add items; blank name finishes the order.")
	for {
		name := prompt(reader, "  Item name: ")
		if name == "" {
			break
		}
		productID := prompt(reader, "  Inventory product id (blank if none): ")
		qty, err := strconv.ParseInt(promptOr(reader, "  Qty: ", "1"), 10, 64)
		if err != nil {
			return fmt.Errorf("quantity must be a whole number: %w", err)
		}
		price, err := money.Parse(promptOr(reader, "  Unit price: ", "0"))
		if err != nil {
			return err
		}
		lines = append(lines, app.OrderLineInput{
			ProductID: productID,
			Name:      name,
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	order, err := svc.CreateOrder(ctx, app.CreateOrderRequest{
		Employee: employee,
		Type:     orderType,
		Table:    table,
		Lines:    lines,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Order %s placed. Total: %s\n", order.ID, money.Format(currency, order.Total))
	return nil
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptOr(reader *bufio.Reader, label, fallback string) string {
	if v := prompt(reader, label); v != "" {
		return v
	}
	return fallback
}
