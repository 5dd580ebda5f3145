// Package money formats integer peso amounts for display. The computational
// core never touches display strings; everything here is presentation only.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-CL"))

// FormatCLP renders a whole-peso amount with es-CL grouping, e.g. "$1.234.567".
// CLP has no decimal subunit, amounts are plain integers end to end.
func FormatCLP(amount int64) string {
	return printer.Sprintf("$%v", number.Decimal(amount))
}
