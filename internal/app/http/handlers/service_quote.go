package handlers

import (
	"encoding/json"
	"net/http"

	"nf-demos/go_backend/internal/domain/money"
	"nf-demos/go_backend/internal/domain/quote"
)

type ServiceQuoteRequest struct {
	ServiceID int `json:"service_id"`
	ZoneID    int `json:"zone_id"`
}

type ServiceQuoteResponse struct {
	Service         string  `json:"service"`
	ServicePrice    int64   `json:"service_price"`
	Zone            string  `json:"zone"`
	DistanceKm      float64 `json:"distance_km"`
	TravelSurcharge int64   `json:"travel_surcharge"`
	Total           int64   `json:"total"`
	TotalFormatted  string  `json:"total_formatted"`
}

func (h *Handlers) ServiceQuote(w http.ResponseWriter, r *http.Request) {
	var req ServiceQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	svc, ok := quote.ServiceByID(req.ServiceID)
	if !ok {
		http.Error(w, "unknown service", http.StatusNotFound)
		return
	}
	zone, ok := quote.ZoneByID(req.ZoneID)
	if !ok {
		http.Error(w, "unknown zone", http.StatusNotFound)
		return
	}

	surcharge, err := h.Pricing.TravelSurcharge(zone.DistanceKm)
	if err != nil {
		http.Error(w, "invalid distance", http.StatusInternalServerError)
		return
	}
	total := svc.Price + surcharge

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ServiceQuoteResponse{
		Service:         svc.Name,
		ServicePrice:    svc.Price,
		Zone:            zone.Name,
		DistanceKm:      zone.DistanceKm,
		TravelSurcharge: surcharge,
		Total:           total,
		TotalFormatted:  money.FormatCLP(total),
	})
}
