package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hoppers-ops/internal/money"
)

// OrderInput holds the fields accepted by the add-order screen.
type OrderInput struct {
	Employee string
	Type     OrderType
	Table    string
	Lines    []OrderLineInput
}

// OrderLineInput is one item on a new order. ProductID is optional: when it
// names an inventory product, placing the order deducts that quantity of
// stock.
type OrderLineInput struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// OrderBook keeps the placed food/table orders and aggregates their totals.
// It holds no pricing or stock logic of its own: line totals are plain
// folds, and stock deduction is delegated to the inventory ledger.
type OrderBook struct {
	mu        sync.Mutex
	orders    []Order
	inventory *InventoryLedger // optional; nil disables stock deduction
	now       func() time.Time
}

// NewOrderBook returns an empty order book. inventory may be nil when
// orders should not touch stock.
func NewOrderBook(inventory *InventoryLedger) *OrderBook {
	return &OrderBook{inventory: inventory, now: time.Now}
}

// AddOrder places an order: line totals are folded into the order total,
// and every line naming an inventory product deducts stock. Deduction is
// all-or-nothing — if any line lacks stock the whole order is refused and
// neither the order book nor the inventory log changes.
func (b *OrderBook) AddOrder(input OrderInput) (*Order, error) {
	if len(input.Lines) == 0 {
		return nil, &ValidationError{Field: "items", Reason: "order must have at least one item"}
	}
	for _, li := range input.Lines {
		if li.Quantity <= 0 {
			return nil, &ValidationError{Field: "quantity", Reason: "must be positive for " + li.Name}
		}
		if li.UnitPrice.IsNegative() {
			return nil, &ValidationError{Field: "price", Reason: "must not be negative for " + li.Name}
		}
	}

	// Lines referencing the same product are aggregated and deducted as one
	// batch: the inventory ledger checks every quantity before appending
	// anything, so a shortfall on any line refuses the whole order.
	if b.inventory != nil {
		required := make(map[string]int64)
		for _, li := range input.Lines {
			if li.ProductID != "" {
				required[li.ProductID] += li.Quantity
			}
		}
		if len(required) > 0 {
			if _, err := b.inventory.DeductBatch(required, "Order usage"); err != nil {
				return nil, err
			}
		}
	}

	order := Order{
		ID:       "ORD-" + uuid.NewString()[:8],
		Employee: input.Employee,
		Type:     input.Type,
		Table:    input.Table,
		Date:     b.now(),
		Total:    decimal.Zero,
	}
	for _, li := range input.Lines {
		lineTotal := money.LineTotal(li.Quantity, li.UnitPrice)
		order.Lines = append(order.Lines, OrderLine{
			ProductID: li.ProductID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			LineTotal: lineTotal,
		})
		order.Total = order.Total.Add(lineTotal)
	}

	b.mu.Lock()
	b.orders = append(b.orders, order)
	b.mu.Unlock()

	return &order, nil
}

// DeleteOrder removes an order; unknown ids are a no-op. Stock deducted when
// the order was placed is not restored — corrections go through the
// inventory screens, which keeps the transaction log honest.
func (b *OrderBook) DeleteOrder(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	kept := b.orders[:0]
	for _, o := range b.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	b.orders = kept
}

// Orders returns all orders in insertion order.
func (b *OrderBook) Orders() []Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// TodayOrders returns the orders placed today (date-only comparison).
func (b *OrderBook) TodayOrders() []Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	today := b.now()
	var out []Order
	for _, o := range b.orders {
		if sameDay(o.Date, today) {
			out = append(out, o)
		}
	}
	return out
}
