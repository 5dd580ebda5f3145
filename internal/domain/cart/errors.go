package cart

import "fmt"

// InvalidQuantityError reports a non-positive quantity passed to AddItem.
// This is a caller bug, not a condition to clamp silently.
type InvalidQuantityError struct {
	Quantity int
}

func (e InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d", e.Quantity)
}

// InvalidItemError reports a malformed product record at the ledger boundary.
type InvalidItemError struct {
	Reason string
}

func (e InvalidItemError) Error() string {
	return fmt.Sprintf("invalid line item: %s", e.Reason)
}

// CorruptedLedgerError signals an internal invariant violation, such as a
// negative or overflowing total. It points at a bug upstream (a bad price in a
// product record), never at normal user input.
type CorruptedLedgerError struct {
	ProductID string
}

func (e CorruptedLedgerError) Error() string {
	if e.ProductID == "" {
		return "corrupted ledger: negative total"
	}
	return fmt.Sprintf("corrupted ledger: total overflow at product %s", e.ProductID)
}
