package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"hoppers-ops/internal/core"
)

// SeedDemoData loads the sample dataset the mobile app shipped with: three
// inventory products with opening stock and two supplier purchases, one of
// them partially paid. Intended for demos and manual testing only.
func SeedDemoData(ctx context.Context, svc ApplicationService) error {
	items := []struct {
		req   AddItemRequest
		stock int64
	}{
		{AddItemRequest{ID: "1", Name: "Beef Fillet", Category: "Butchery"}, 15},
		{AddItemRequest{ID: "2", Name: "Potatoes", Category: "Vegetables"}, 5},
		{AddItemRequest{ID: "3", Name: "Cooking Oil", Category: "Kitchen"}, 12},
	}
	for _, it := range items {
		if _, err := svc.AddItem(ctx, it.req); err != nil {
			return fmt.Errorf("seed product %s: %w", it.req.Name, err)
		}
		if _, err := svc.AddStock(ctx, StockRequest{
			ProductID: it.req.ID,
			Quantity:  it.stock,
			Reason:    "Opening stock",
		}); err != nil {
			return fmt.Errorf("seed stock for %s: %w", it.req.Name, err)
		}
	}

	// Sugar purchase, partially paid: 10 × 500 = 5000, 2000 down.
	if _, err := svc.AddExpense(ctx, AddExpenseRequest{
		ProductName: "Sugar",
		Supplier:    "Local Supplier",
		Quantity:    10,
		UnitPrice:   decimal.NewFromInt(500),
		Paid:        decimal.NewFromInt(2000),
	}); err != nil {
		return fmt.Errorf("seed sugar expense: %w", err)
	}

	// Flour purchase, fully paid.
	if _, err := svc.AddExpense(ctx, AddExpenseRequest{
		ProductName: "Flour",
		Supplier:    "BigMill Ltd",
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(3000),
		Paid:        decimal.NewFromInt(3000),
	}); err != nil {
		return fmt.Errorf("seed flour expense: %w", err)
	}

	return nil
}

// Demo order helper kept alongside the seed so the REPL walkthrough has a
// plated example; takes product ids from the seeded inventory.
func SeedDemoOrder(ctx context.Context, svc ApplicationService) (*core.Order, error) {
	return svc.CreateOrder(ctx, CreateOrderRequest{
		Employee: "John Doe",
		Type:     core.OrderDineIn,
		Table:    "T1",
		Lines: []OrderLineInput{
			{ProductID: "1", Name: "Beef Fillet", Quantity: 1, UnitPrice: decimal.NewFromInt(650)},
			{ProductID: "2", Name: "Potatoes", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
	})
}
