package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildProductSearchYearTerm(t *testing.T) {
	sql, args := buildProductSearch("toyota 2008")

	assert.Contains(t, sql, "(anio_desde <= $2 AND anio_hasta >= $2)")
	assert.Equal(t, []any{"%toyota%", 2008}, args)
}

func TestBuildProductSearchSignedTokensAreText(t *testing.T) {
	// "-123" and "+999" parse as integers but are not 4-digit years; they
	// must hit the descriptive columns, never the year range.
	sql, args := buildProductSearch("-123 +999")

	assert.NotContains(t, sql, "anio_desde")
	assert.Equal(t, []any{"%-123%", "%+999%"}, args)
}

func TestBuildProductSearchEmpty(t *testing.T) {
	sql, args := buildProductSearch("")

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY id_producto")
	assert.Empty(t, args)
}
