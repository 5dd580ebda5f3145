package handlers

import (
	"encoding/json"
	"net/http"

	"nf-demos/go_backend/internal/domain/money"
	"nf-demos/go_backend/internal/domain/quote"
)

type serviceResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"nombre"`
	Description    string `json:"descripcion"`
	Price          int64  `json:"precio"`
	PriceFormatted string `json:"precio_formateado"`
}

type zoneResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"nombre"`
	DistanceKm      float64 `json:"distancia"`
	TravelSurcharge int64   `json:"traslado"`
}

func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	var resp []serviceResponse
	for _, s := range quote.Services() {
		resp = append(resp, serviceResponse{
			ID:             s.ID,
			Name:           s.Name,
			Description:    s.Description,
			Price:          s.Price,
			PriceFormatted: money.FormatCLP(s.Price),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// ListZones includes the computed surcharge per zone so the picker can show
// it without a round trip per selection.
func (h *Handlers) ListZones(w http.ResponseWriter, r *http.Request) {
	var resp []zoneResponse
	for _, z := range quote.Zones() {
		surcharge, err := h.Pricing.TravelSurcharge(z.DistanceKm)
		if err != nil {
			http.Error(w, "invalid zone data", http.StatusInternalServerError)
			return
		}
		resp = append(resp, zoneResponse{
			ID:              z.ID,
			Name:            z.Name,
			DistanceKm:      z.DistanceKm,
			TravelSurcharge: surcharge,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
