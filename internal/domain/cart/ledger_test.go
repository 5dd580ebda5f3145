package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price int64) LineItem {
	return LineItem{ProductID: id, Name: "item " + id, UnitPrice: price}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	l := New()

	assert.NoError(t, l.AddItem(item("P", 1000), 2))
	assert.NoError(t, l.AddItem(item("P", 1000), 3))

	assert.Len(t, l.Items(), 1)
	entry, ok := l.Entry("P")
	assert.True(t, ok)
	assert.Equal(t, 5, entry.Quantity)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	l := New()

	assert.ErrorIs(t, l.AddItem(item("P", 1000), 0), InvalidQuantityError{Quantity: 0})
	assert.ErrorIs(t, l.AddItem(item("P", 1000), -3), InvalidQuantityError{Quantity: -3})
	assert.Error(t, l.AddItem(item("", 1000), 1))
	assert.Error(t, l.AddItem(item("P", -1), 1))
	assert.Equal(t, 0, l.Count())
}

func TestRemoveItemPartialAndFull(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("A", 500), 4))

	l.RemoveItem("A", 1)
	entry, ok := l.Entry("A")
	assert.True(t, ok)
	assert.Equal(t, 3, entry.Quantity)

	// Removing at least the stored quantity deletes the entry outright.
	l.RemoveItem("A", 10)
	assert.False(t, l.IsInCart("A"))
	_, ok = l.Entry("A")
	assert.False(t, ok)
}

func TestRemoveItemNoOps(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("A", 500), 2))

	l.RemoveItem("missing", 1)
	l.RemoveItem("A", 0)
	l.RemoveItem("A", -5)

	assert.Equal(t, 2, l.Count())
}

func TestRemoveItemKeepsOrderAndIndex(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("A", 100), 1))
	assert.NoError(t, l.AddItem(item("B", 200), 1))
	assert.NoError(t, l.AddItem(item("C", 300), 1))

	l.RemoveItem("B", 1)

	items := l.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "A", items[0].ProductID)
	assert.Equal(t, "C", items[1].ProductID)

	entry, ok := l.Entry("C")
	assert.True(t, ok)
	assert.Equal(t, int64(300), entry.UnitPrice)
}

func TestCartScenario(t *testing.T) {
	l := New()
	p := LineItem{ProductID: "X", Name: "Alternador", UnitPrice: 10000}

	assert.NoError(t, l.AddItem(p, 2))
	total, err := l.Total()
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), total)
	assert.Equal(t, 2, l.Count())

	assert.NoError(t, l.AddItem(p, 1))
	total, err = l.Total()
	assert.NoError(t, err)
	assert.Equal(t, int64(30000), total)
	assert.Equal(t, 3, l.Count())

	l.RemoveItem("X", 1)
	total, err = l.Total()
	assert.NoError(t, err)
	assert.Equal(t, int64(20000), total)
	assert.Equal(t, 2, l.Count())

	l.RemoveItem("X", 10)
	total, err = l.Total()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, 0, l.Count())
	assert.False(t, l.IsInCart("X"))
}

func TestClear(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("A", 100), 1))
	assert.NoError(t, l.AddItem(item("B", 200), 2))

	l.Clear()

	total, err := l.Total()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Equal(t, 0, l.Count())
	assert.Empty(t, l.Items())

	// The ledger stays usable after a clear.
	assert.NoError(t, l.AddItem(item("A", 100), 1))
	assert.Equal(t, 1, l.Count())
}

func TestTaxBreakdownReconstructsTotal(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("X", 100000), 1))

	split, err := l.TaxBreakdown(DefaultVATRate)
	assert.NoError(t, err)
	assert.Equal(t, int64(84034), split.Net)
	assert.Equal(t, int64(15966), split.Tax)
	assert.Equal(t, int64(100000), split.Net+split.Tax)
}

func TestTaxBreakdownReconstructsAcrossTotals(t *testing.T) {
	// Net is rounded, tax is derived by subtraction: the two must always add
	// back to the exact total, whatever the rounding did.
	for _, total := range []int64{0, 1, 7, 119, 990, 20990, 99999, 100001, 123456789} {
		l := New()
		assert.NoError(t, l.AddItem(item("P", total), 1))

		split, err := l.TaxBreakdown(DefaultVATRate)
		assert.NoError(t, err)
		assert.Equal(t, total, split.Net+split.Tax, "total %d", total)
	}
}

func TestTotalOverflowIsCorruption(t *testing.T) {
	l := New()
	assert.NoError(t, l.AddItem(item("big", int64(1)<<62), 1))
	assert.NoError(t, l.AddItem(item("big2", int64(1)<<62), 1))

	_, err := l.Total()
	var corrupted CorruptedLedgerError
	assert.ErrorAs(t, err, &corrupted)

	_, err = l.TaxBreakdown(DefaultVATRate)
	assert.ErrorAs(t, err, &corrupted)
}
