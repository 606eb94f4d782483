package app

import (
	"github.com/shopspring/decimal"

	"hoppers-ops/internal/core"
)

// AddItemRequest is the input for registering a new inventory product.
type AddItemRequest struct {
	ID       string
	Name     string
	Category string
}

// StockRequest is the input for a stock addition or deduction.
type StockRequest struct {
	ProductID string
	Quantity  int64
	Reason    string
}

// AddExpenseRequest is the input for recording a supplier purchase.
// ProductID and TotalAmount are optional (derived when absent).
type AddExpenseRequest struct {
	ProductID   string
	ProductName string
	Supplier    string
	Description string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	Paid        decimal.Decimal
}

// PayRequest is the input for settling a balance. Target is an expense id
// for PayBalance and a product group key for PayProductBalance.
type PayRequest struct {
	Target string
	Amount decimal.Decimal
	Note   string
}

// CreateOrderRequest is the input for placing a food/table order.
type CreateOrderRequest struct {
	Employee string
	Type     core.OrderType
	Table    string
	Lines    []OrderLineInput
}

// OrderLineInput is one item within a CreateOrderRequest.
type OrderLineInput struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}
