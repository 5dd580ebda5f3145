package cart

import (
	"math"

	"github.com/JohnCGriffin/overflow"
)

// DefaultVATRate is the Chilean IVA applied to tax-inclusive totals.
const DefaultVATRate = 0.19

// LineItem is one product/quantity pairing with its locked-in unit price.
// Name and ImageURL are carried for rendering only and never enter a computation.
type LineItem struct {
	ProductID string
	Name      string
	ImageURL  string
	UnitPrice int64
	Quantity  int
}

// Ledger holds the items a visitor intends to purchase, keyed by product id.
// It is a plain session-scoped value: create one per cart with New, never share
// a package-level instance. Insertion order is preserved for display.
type Ledger struct {
	items []LineItem
	index map[string]int
}

func New() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// AddItem merges qty into an existing entry for the same product id, or appends
// a new entry. Stock clamping is the caller's job: the ledger does not know
// current stock. item.Quantity is ignored, qty is what gets added.
func (l *Ledger) AddItem(item LineItem, qty int) error {
	if qty <= 0 {
		return InvalidQuantityError{Quantity: qty}
	}
	if item.ProductID == "" {
		return InvalidItemError{Reason: "empty product id"}
	}
	if item.UnitPrice < 0 {
		return InvalidItemError{Reason: "negative unit price"}
	}
	if i, ok := l.index[item.ProductID]; ok {
		l.items[i].Quantity += qty
		return nil
	}
	item.Quantity = qty
	l.index[item.ProductID] = len(l.items)
	l.items = append(l.items, item)
	return nil
}

// RemoveItem decrements the stored quantity by qty, deleting the entry outright
// when qty covers it. An absent product id or a non-positive qty is a silent
// no-op: removing what isn't there is a benign race from the UI's point of view.
func (l *Ledger) RemoveItem(productID string, qty int) {
	if qty <= 0 {
		return
	}
	i, ok := l.index[productID]
	if !ok {
		return
	}
	if qty < l.items[i].Quantity {
		l.items[i].Quantity -= qty
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, productID)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].ProductID] = j
	}
}

func (l *Ledger) IsInCart(productID string) bool {
	_, ok := l.index[productID]
	return ok
}

// Entry returns the stored line item. Present entries always have Quantity >= 1.
func (l *Ledger) Entry(productID string) (LineItem, bool) {
	i, ok := l.index[productID]
	if !ok {
		return LineItem{}, false
	}
	return l.items[i], true
}

// Items returns the entries in insertion order. The slice is a copy.
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Clear() {
	l.items = nil
	l.index = make(map[string]int)
}

// Total is the tax-inclusive sum of unit price times quantity over all entries,
// recomputed from current state on every call. Arithmetic is overflow-checked;
// a total that overflows or goes negative means a corrupt upstream price.
func (l *Ledger) Total() (int64, error) {
	var total int64
	for _, it := range l.items {
		line, ok := overflow.Mul64(it.UnitPrice, int64(it.Quantity))
		if !ok {
			return 0, CorruptedLedgerError{ProductID: it.ProductID}
		}
		total, ok = overflow.Add64(total, line)
		if !ok {
			return 0, CorruptedLedgerError{ProductID: it.ProductID}
		}
	}
	if total < 0 {
		return 0, CorruptedLedgerError{}
	}
	return total, nil
}

// Count is the sum of quantities, not the number of distinct entries.
func (l *Ledger) Count() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// TaxBreakdown splits the tax-inclusive total into net and tax amounts.
type TaxBreakdown struct {
	Net int64
	Tax int64
}

// TaxBreakdown computes net = round(total / (1+rate)) and tax = total - net.
// Tax is derived by subtraction rather than rounded independently, so
// Net + Tax reconstructs the total exactly. Rounding is half away from zero.
func (l *Ledger) TaxBreakdown(rate float64) (TaxBreakdown, error) {
	total, err := l.Total()
	if err != nil {
		return TaxBreakdown{}, err
	}
	net := int64(math.Round(float64(total) / (1 + rate)))
	return TaxBreakdown{Net: net, Tax: total - net}, nil
}
