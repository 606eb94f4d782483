package core

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InventoryLedger maintains per-product stock levels as a fold over an
// append-only log of signed quantity transactions. It is constructed once by
// the composition root and passed by handle to whatever consumes it; there
// is no ambient singleton.
//
// The usage contract is single-writer (one UI event at a time); the mutex
// only keeps the handle safe if an adapter ever dispatches concurrently.
type InventoryLedger struct {
	mu           sync.Mutex
	products     []Product
	transactions []StockTransaction
	now          func() time.Time
}

// NewInventoryLedger returns an empty inventory ledger.
func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{now: time.Now}
}

// ── Mutations ─────────────────────────────────────────────────────────────────

// AddProduct registers a new product under a caller-supplied unique id.
// Name and category validation beyond non-blank id/name is a presentation
// concern.
func (l *InventoryLedger) AddProduct(id, name, category string) (*Product, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be blank"}
	}
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be blank"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range l.products {
		if p.ID == id {
			return nil, &ValidationError{Field: "id", Reason: "already registered: " + id}
		}
	}

	p := Product{ID: id, Name: name, Category: category}
	l.products = append(l.products, p)
	return &p, nil
}

// AddStock appends a positive stock transaction. The quantity is coerced to
// its absolute value, so a screen passing a negative number still records an
// addition. reason is optional.
func (l *InventoryLedger) AddStock(productID string, qty int64, reason string) (*StockTransaction, error) {
	qty, err := normalizeQty(qty)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.productExists(productID) {
		return nil, &NotFoundError{Kind: "product", ID: productID}
	}

	tx := StockTransaction{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  qty,
		Reason:    reason,
		Date:      l.now(),
	}
	l.transactions = append(l.transactions, tx)
	return &tx, nil
}

// DeductStock appends a negative stock transaction after checking the
// derived total. A deduction exceeding the available quantity is refused
// with InsufficientStockError and the log is left unchanged.
func (l *InventoryLedger) DeductStock(productID string, qty int64, reason string) (*StockTransaction, error) {
	qty, err := normalizeQty(qty)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.productExists(productID) {
		return nil, &NotFoundError{Kind: "product", ID: productID}
	}

	available := l.total(productID)
	if qty > available {
		return nil, &InsufficientStockError{ProductID: productID, Requested: qty, Available: available}
	}

	tx := StockTransaction{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  -qty,
		Reason:    reason,
		Date:      l.now(),
	}
	l.transactions = append(l.transactions, tx)
	return &tx, nil
}

// DeductBatch applies a set of deductions as one unit. Every quantity is
// checked against the derived totals before any transaction is appended, all
// under a single critical section, so a shortfall on one product leaves the
// whole log untouched even if another writer is active.
func (l *InventoryLedger) DeductBatch(quantities map[string]int64, reason string) ([]StockTransaction, error) {
	normalized := make(map[string]int64, len(quantities))
	for productID, qty := range quantities {
		q, err := normalizeQty(qty)
		if err != nil {
			return nil, err
		}
		normalized[productID] = q
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for productID, qty := range normalized {
		if !l.productExists(productID) {
			return nil, &NotFoundError{Kind: "product", ID: productID}
		}
		available := l.total(productID)
		if qty > available {
			return nil, &InsufficientStockError{ProductID: productID, Requested: qty, Available: available}
		}
	}

	date := l.now()
	txs := make([]StockTransaction, 0, len(normalized))
	for productID, qty := range normalized {
		tx := StockTransaction{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  -qty,
			Reason:    reason,
			Date:      date,
		}
		l.transactions = append(l.transactions, tx)
		txs = append(txs, tx)
	}
	return txs, nil
}

// DeleteProduct removes a product and cascades to its transaction history.
// Unknown ids are a no-op.
func (l *InventoryLedger) DeleteProduct(productID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.products[:0]
	for _, p := range l.products {
		if p.ID != productID {
			kept = append(kept, p)
		}
	}
	l.products = kept

	keptTx := l.transactions[:0]
	for _, tx := range l.transactions {
		if tx.ProductID != productID {
			keptTx = append(keptTx, tx)
		}
	}
	l.transactions = keptTx
}

// ── Queries ───────────────────────────────────────────────────────────────────

// Products returns the registered products in insertion order.
func (l *InventoryLedger) Products() []Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Product, len(l.products))
	copy(out, l.products)
	return out
}

// Categories returns the distinct product categories in first-seen order,
// used by the add-item screen for auto-suggest.
func (l *InventoryLedger) Categories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range l.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ProductTotal returns the fold-sum of a product's transactions. Unknown or
// empty products report zero.
func (l *InventoryLedger) ProductTotal(productID string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total(productID)
}

// ProductTransactions returns a product's transactions ordered by ascending
// date. The sum is order-independent; the ordering exists so callers can
// read the most recent entry as "last updated".
func (l *InventoryLedger) ProductTransactions(productID string) []StockTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []StockTransaction
	for _, tx := range l.transactions {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Snapshot returns the derived inventory list: one StockLevel per product
// with its current quantity and last-updated time.
func (l *InventoryLedger) Snapshot() []StockLevel {
	l.mu.Lock()
	defer l.mu.Unlock()

	levels := make([]StockLevel, 0, len(l.products))
	for _, p := range l.products {
		sl := StockLevel{ID: p.ID, Name: p.Name, Category: p.Category}
		for _, tx := range l.transactions {
			if tx.ProductID != p.ID {
				continue
			}
			sl.Quantity += tx.Quantity
			if tx.Date.After(sl.Updated) {
				sl.Updated = tx.Date
			}
		}
		levels = append(levels, sl)
	}
	return levels
}

// ── internals ─────────────────────────────────────────────────────────────────

// total folds the signed quantities for one product. Callers hold l.mu.
func (l *InventoryLedger) total(productID string) int64 {
	var sum int64
	for _, tx := range l.transactions {
		if tx.ProductID == productID {
			sum += tx.Quantity
		}
	}
	return sum
}

// productExists reports whether the id is registered. Callers hold l.mu.
func (l *InventoryLedger) productExists(id string) bool {
	for _, p := range l.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// normalizeQty coerces a quantity to its magnitude. math.MinInt64 has no
// positive counterpart in int64 (negating it overflows back to itself), so
// it is refused rather than let a negative quantity reach the log.
func normalizeQty(qty int64) (int64, error) {
	if qty == math.MinInt64 {
		return 0, &ValidationError{Field: "quantity", Reason: "magnitude out of range"}
	}
	if qty < 0 {
		qty = -qty
	}
	if qty == 0 {
		return 0, &ValidationError{Field: "quantity", Reason: "must be non-zero"}
	}
	return qty, nil
}
