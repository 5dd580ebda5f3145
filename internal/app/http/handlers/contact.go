package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nf-demos/go_backend/internal/domain/contact"
)

type CreateContactRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
	Message   string `json:"mensaje"`
}

func (h *Handlers) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		http.Error(w, "nombre, correo and mensaje are required", http.StatusBadRequest)
		return
	}

	c := contact.Contact{
		Ticket:    contact.NewTicket(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	if err := h.Store.InsertContact(r.Context(), c); err != nil {
		http.Error(w, "contact save failed", http.StatusInternalServerError)
		return
	}

	// Notifications are best effort and must never fail the ticket.
	go h.sendContactEmails(c)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"ticket": c.Ticket})
}
