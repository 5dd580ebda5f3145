package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"nf-demos/go_backend/internal/domain/catalog"
)

const productColumns = `id_producto, proveedor, codigo_proveedor, descripcion, posicion,
	ubicacion, lado, marca, modelo, anio_desde, anio_hasta, version, marca_prod,
	imagen0, imagen1, precio_costo, cantidad`

// SearchProducts ANDs the whitespace-separated terms: a 4-digit term matches
// the product's year range, anything else matches the descriptive columns
// case-insensitively.
func (db *DB) SearchProducts(ctx context.Context, search string) ([]catalog.Product, error) {
	sql, args := buildProductSearch(search)
	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.Supplier, &p.SupplierCode, &p.Description, &p.Position,
			&p.Location, &p.Side, &p.Brand, &p.Model, &p.YearFrom, &p.YearTo,
			&p.Version, &p.ProductBrand, &p.Image0, &p.Image1, &p.CostPrice, &p.Stock,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func buildProductSearch(search string) (string, []any) {
	sql := `SELECT ` + productColumns + ` FROM productos`
	var conds []string
	var args []any

	for _, term := range strings.Fields(search) {
		if len(term) == 4 && isDigits(term) {
			year, _ := strconv.Atoi(term)
			args = append(args, year)
			n := len(args)
			conds = append(conds, fmt.Sprintf("(anio_desde <= $%d AND anio_hasta >= $%d)", n, n))
			continue
		}
		args = append(args, "%"+term+"%")
		n := len(args)
		var ors []string
		for _, col := range []string{"descripcion", "marca", "modelo", "version", "posicion", "ubicacion", "lado", "proveedor", "marca_prod"} {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	return sql + " ORDER BY id_producto", args
}

// isDigits reports whether s is ASCII digits only. Signed tokens like "-123"
// are ordinary search terms, not year filters.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
