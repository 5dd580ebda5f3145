package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Product is one auto-part row from the catalog. Prices are whole pesos and
// the sale price is derived, never stored.
type Product struct {
	ID           string
	Supplier     string
	SupplierCode string
	Description  string
	Position     string
	Location     string
	Side         string
	Brand        string
	Model        string
	YearFrom     int
	YearTo       int
	Version      string
	ProductBrand string
	Image0       string
	Image1       string
	CostPrice    int64
	Stock        int
}

var (
	vatFactor    = decimal.NewFromFloat(1.19)
	marginFactor = decimal.NewFromFloat(1.4)
	listFactor   = decimal.NewFromFloat(1.25)
)

// MinimumSalePrice is cost plus VAT plus the base margin, kept in decimal
// because the intermediate steps are fractional.
func (p Product) MinimumSalePrice() decimal.Decimal {
	return decimal.NewFromInt(p.CostPrice).Mul(vatFactor).Mul(marginFactor)
}

// SalePrice applies the list markup and snaps to the x.990 price point:
// truncate to thousands, then add 990.
func (p Product) SalePrice() int64 {
	price := p.MinimumSalePrice().Mul(listFactor)
	thousands := price.Div(decimal.NewFromInt(1000)).Floor().IntPart()
	return thousands*1000 + 990
}

// StockStatus buckets the raw count into the labels the storefront shows.
func (p Product) StockStatus() string {
	switch {
	case p.Stock > 5:
		return "Stock disponible"
	case p.Stock >= 2:
		return "Últimas unidades"
	case p.Stock == 1:
		return "Última unidad"
	default:
		return "Sin stock"
	}
}

// FullName joins the descriptive fields, skipping blanks.
func (p Product) FullName() string {
	parts := []string{
		p.Description, p.Location, p.Side, p.Position,
		p.Brand, p.Model, strconv.Itoa(p.YearFrom), "-", strconv.Itoa(p.YearTo),
	}
	kept := parts[:0]
	for _, s := range parts {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
