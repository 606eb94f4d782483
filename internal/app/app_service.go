package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"hoppers-ops/internal/core"
	"hoppers-ops/internal/logger"
)

type appService struct {
	inventory *core.InventoryLedger
	expenses  *core.ExpenseLedger
	orders    *core.OrderBook
	log       zerolog.Logger
}

// NewAppService constructs an appService over the ledgers built by the
// composition root. The ledgers are shared handles, not copies: the order
// book must have been built over the same inventory ledger.
func NewAppService(
	inventory *core.InventoryLedger,
	expenses *core.ExpenseLedger,
	orders *core.OrderBook,
) ApplicationService {
	return &appService{
		inventory: inventory,
		expenses:  expenses,
		orders:    orders,
		log:       logger.WithComponent("app"),
	}
}

// ── Inventory ─────────────────────────────────────────────────────────────────

func (s *appService) GetInventory(ctx context.Context) (*InventoryResult, error) {
	return &InventoryResult{Levels: s.inventory.Snapshot()}, nil
}

func (s *appService) GetCategories(ctx context.Context) ([]string, error) {
	return s.inventory.Categories(), nil
}

func (s *appService) AddItem(ctx context.Context, req AddItemRequest) (*core.Product, error) {
	p, err := s.inventory.AddProduct(req.ID, req.Name, req.Category)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("product", p.ID).Str("category", p.Category).Msg("product registered")
	return p, nil
}

func (s *appService) AddStock(ctx context.Context, req StockRequest) (*core.StockTransaction, error) {
	tx, err := s.inventory.AddStock(req.ProductID, req.Quantity, req.Reason)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("product", req.ProductID).Int64("qty", tx.Quantity).Msg("stock added")
	return tx, nil
}

func (s *appService) DeductStock(ctx context.Context, req StockRequest) (*core.StockTransaction, error) {
	tx, err := s.inventory.DeductStock(req.ProductID, req.Quantity, req.Reason)
	if err != nil {
		var short *core.InsufficientStockError
		if errors.As(err, &short) {
			s.log.Info().Str("product", short.ProductID).
				Int64("requested", short.Requested).
				Int64("available", short.Available).
				Msg("deduction refused")
		}
		return nil, err
	}
	s.log.Debug().Str("product", req.ProductID).Int64("qty", tx.Quantity).Msg("stock deducted")
	return tx, nil
}

func (s *appService) DeleteItem(ctx context.Context, productID string) error {
	s.inventory.DeleteProduct(productID)
	s.log.Debug().Str("product", productID).Msg("product deleted")
	return nil
}

func (s *appService) GetProductHistory(ctx context.Context, productID string) ([]core.StockTransaction, error) {
	return s.inventory.ProductTransactions(productID), nil
}

// ── Expenses ──────────────────────────────────────────────────────────────────

func (s *appService) ListExpenses(ctx context.Context) (*ExpenseListResult, error) {
	expenses := s.expenses.Expenses()
	rows := make([]ExpenseRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, ExpenseRow{
			Expense:      e,
			Outstanding:  e.Outstanding(),
			GroupBalance: s.expenses.ProductBalance(e.ProductID),
		})
	}
	return &ExpenseListResult{Rows: rows}, nil
}

func (s *appService) AddExpense(ctx context.Context, req AddExpenseRequest) (*core.Expense, error) {
	e, err := s.expenses.AddExpense(core.ExpenseInput{
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Supplier:    req.Supplier,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		TotalAmount: req.TotalAmount,
		Paid:        req.Paid,
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("expense", e.ID).Str("group", e.ProductID).
		Str("total", e.TotalAmount.StringFixed(2)).Msg("expense recorded")
	return e, nil
}

func (s *appService) PayBalance(ctx context.Context, req PayRequest) (decimal.Decimal, error) {
	out, err := s.expenses.PayBalance(req.Target, req.Amount, req.Note)
	if err != nil {
		s.logPaymentRefusal(err)
		return decimal.Zero, err
	}
	s.log.Debug().Str("expense", req.Target).
		Str("amount", req.Amount.StringFixed(2)).Msg("payment recorded")
	return out, nil
}

func (s *appService) PayProductBalance(ctx context.Context, req PayRequest) (decimal.Decimal, error) {
	out, err := s.expenses.PayProductBalance(req.Target, req.Amount, req.Note)
	if err != nil {
		s.logPaymentRefusal(err)
		return decimal.Zero, err
	}
	s.log.Debug().Str("group", req.Target).
		Str("amount", req.Amount.StringFixed(2)).Msg("group payment recorded")
	return out, nil
}

func (s *appService) DeleteExpense(ctx context.Context, expenseID string) error {
	s.expenses.DeleteExpense(expenseID)
	s.log.Debug().Str("expense", expenseID).Msg("expense deleted")
	return nil
}

func (s *appService) GetProductBalance(ctx context.Context, productID string) (decimal.Decimal, error) {
	return s.expenses.ProductBalance(productID), nil
}

func (s *appService) GetPayments(ctx context.Context, expenseID string) ([]core.Payment, error) {
	return s.expenses.PaymentsByExpense(expenseID), nil
}

func (s *appService) logPaymentRefusal(err error) {
	var over *core.OverpaymentError
	if errors.As(err, &over) {
		s.log.Info().Str("target", over.Target).
			Str("amount", over.Amount.StringFixed(2)).
			Str("outstanding", over.Outstanding.StringFixed(2)).
			Msg("payment refused")
	}
}

// ── Orders ────────────────────────────────────────────────────────────────────

func (s *appService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*core.Order, error) {
	lines := make([]core.OrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = core.OrderLineInput{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}

	order, err := s.orders.AddOrder(core.OrderInput{
		Employee: req.Employee,
		Type:     req.Type,
		Table:    req.Table,
		Lines:    lines,
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("order", order.ID).
		Str("total", order.Total.StringFixed(2)).Msg("order placed")
	return order, nil
}

func (s *appService) ListOrders(ctx context.Context, todayOnly bool) (*OrderListResult, error) {
	if todayOnly {
		return &OrderListResult{Orders: s.orders.TodayOrders()}, nil
	}
	return &OrderListResult{Orders: s.orders.Orders()}, nil
}

func (s *appService) DeleteOrder(ctx context.Context, orderID string) error {
	s.orders.DeleteOrder(orderID)
	s.log.Debug().Str("order", orderID).Msg("order deleted")
	return nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

func (s *appService) GetTodaySummary(ctx context.Context) (*SummaryResult, error) {
	result := &SummaryResult{
		Expenses:    s.expenses.TodaySummary(),
		OrdersTotal: decimal.Zero,
	}
	for _, o := range s.orders.TodayOrders() {
		result.OrderCount++
		result.OrdersTotal = result.OrdersTotal.Add(o.Total)
	}
	return result, nil
}
