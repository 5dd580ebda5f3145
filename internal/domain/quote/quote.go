package quote

import (
	"time"

	"nf-demos/go_backend/internal/domain/cart"
)

type Quote struct {
	Number    string
	CreatedAt time.Time
	Customer  Customer
	Items     []Item

	Subtotal int64
	Net      int64
	VAT      int64
	Total    int64
	Comment  string
}

type Customer struct {
	Name  string
	Phone string
	City  string
}

type Item struct {
	ProductID string
	Name      string
	Qty       int
	UnitPrice int64
	LineTotal int64
}

// FromLedger snapshots a cart into a quote document. The subtotal is the
// ledger's tax-inclusive total and Net+VAT reconstructs it exactly.
func FromLedger(number string, customer Customer, l *cart.Ledger, vatRate float64, comment string) (Quote, error) {
	total, err := l.Total()
	if err != nil {
		return Quote{}, err
	}
	split, err := l.TaxBreakdown(vatRate)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		Number:    number,
		CreatedAt: time.Now(),
		Customer:  customer,
		Subtotal:  total,
		Net:       split.Net,
		VAT:       split.Tax,
		Total:     total,
		Comment:   comment,
	}
	for _, it := range l.Items() {
		q.Items = append(q.Items, Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.UnitPrice * int64(it.Quantity),
		})
	}
	return q, nil
}
