package gofpdf

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf"

	"nf-demos/go_backend/internal/domain/money"
	"nf-demos/go_backend/internal/domain/quote"
)

type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Cotización", false)
	// Quote text is Spanish, core fonts plus the cp1252 translator cover it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Cotización"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("N° %s del %s", q.Number, q.CreatedAt.Format("02-01-2006"))))
	pdf.Ln(6)

	if q.Customer.Name != "" || q.Customer.Phone != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Cliente: %s %s", q.Customer.Name, q.Customer.Phone)))
		pdf.Ln(6)
	}
	if q.Customer.City != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Comuna: %s", q.Customer.City)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(110, 7, tr("Producto"))
	pdf.Cell(20, 7, tr("Cant."))
	pdf.Cell(30, 7, tr("Precio"))
	pdf.Cell(30, 7, tr("Subtotal"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.Cell(110, 6, tr(trim(it.Name, 60)))
		pdf.Cell(20, 6, fmt.Sprintf("%d", it.Qty))
		pdf.Cell(30, 6, tr(money.FormatCLP(it.UnitPrice)))
		pdf.Cell(30, 6, tr(money.FormatCLP(it.LineTotal)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Neto: %s", money.FormatCLP(q.Net))))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("IVA (19%%): %s", money.FormatCLP(q.VAT))))
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total: %s", money.FormatCLP(q.Total))))
	pdf.Ln(6)

	if q.Comment != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, tr(trim(q.Comment, 90)))
		pdf.Ln(5)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr("NF Demos • Repuestos y Servicios"))
	pdf.Ln(5)
	pdf.Cell(0, 5, tr(fmt.Sprintf("Generado: %s", time.Now().Format(time.RFC3339))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
