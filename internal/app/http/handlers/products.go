package handlers

import (
	"encoding/json"
	"net/http"
)

type productResponse struct {
	ID          string `json:"id_producto"`
	Name        string `json:"nombre_completo"`
	Description string `json:"descripcion"`
	Brand       string `json:"marca"`
	Model       string `json:"modelo"`
	YearFrom    int    `json:"anio_desde"`
	YearTo      int    `json:"anio_hasta"`
	Image0      string `json:"imagen0"`
	Image1      string `json:"imagen1"`
	SalePrice   int64  `json:"precio_venta"`
	Stock       int    `json:"cantidad"`
	StockStatus string `json:"estado_stock"`
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.SearchProducts(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		http.Error(w, "product lookup failed", http.StatusInternalServerError)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, productResponse{
			ID:          p.ID,
			Name:        p.FullName(),
			Description: p.Description,
			Brand:       p.Brand,
			Model:       p.Model,
			YearFrom:    p.YearFrom,
			YearTo:      p.YearTo,
			Image0:      p.Image0,
			Image1:      p.Image1,
			SalePrice:   p.SalePrice(),
			Stock:       p.Stock,
			StockStatus: p.StockStatus(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
