package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"nf-demos/go_backend/internal/domain/cart"
	"nf-demos/go_backend/internal/domain/quote"
	pdfgen "nf-demos/go_backend/internal/domain/quote/pdf/gofpdf"
)

type CreateQuoteRequest struct {
	Customer struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		City  string `json:"city"`
	} `json:"customer"`
	Items []struct {
		ProductID string `json:"product_id"`
		Qty       int    `json:"qty"`
		Name      string `json:"name"`
		ImageURL  string `json:"image_url"`
		UnitPrice int64  `json:"unit_price"`
	} `json:"items"`
	Comment string `json:"comment"`
}

// CreateQuote builds a cart from the submitted line items and returns the
// quote as a PDF. Repeated product ids merge into one line, and the Neto/IVA
// block on the document always adds back up to the total.
func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "no items", http.StatusBadRequest)
		return
	}

	ledger := cart.New()
	for _, it := range req.Items {
		err := ledger.AddItem(cart.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			UnitPrice: it.UnitPrice,
		}, it.Qty)
		var badQty cart.InvalidQuantityError
		var badItem cart.InvalidItemError
		switch {
		case errors.As(err, &badQty), errors.As(err, &badItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			http.Error(w, "quote build failed", http.StatusInternalServerError)
			return
		}
	}

	number := "NF-" + strings.ToUpper(uuid.NewString()[:8])
	q, err := quote.FromLedger(number, quote.Customer{
		Name:  req.Customer.Name,
		Phone: req.Customer.Phone,
		City:  req.Customer.City,
	}, ledger, h.Cfg.VATRate, req.Comment)
	if err != nil {
		http.Error(w, "quote build failed", http.StatusInternalServerError)
		return
	}

	gen := pdfgen.New()
	pdfBytes, err := gen.Generate(q)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, number))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
