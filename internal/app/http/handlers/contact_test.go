package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nf-demos/go_backend/internal/app/config"
	"nf-demos/go_backend/internal/domain/catalog"
	"nf-demos/go_backend/internal/domain/contact"
)

type stubStore struct {
	products  []catalog.Product
	searchErr error
	insertErr error
	inserted  []contact.Contact
}

func (s *stubStore) SearchProducts(ctx context.Context, search string) ([]catalog.Product, error) {
	return s.products, s.searchErr
}

func (s *stubStore) InsertContact(ctx context.Context, c contact.Contact) error {
	s.inserted = append(s.inserted, c)
	return s.insertErr
}

func TestCreateContactIssuesTicket(t *testing.T) {
	store := &stubStore{}
	h := New(store, config.Config{})

	body := `{"nombre": "Ana", "apellido": "Rojas", "telefono": "+56 9 1234 5678",
		"correo": "ana@example.com", "mensaje": "Consulta por alternador"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateContact(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp["ticket"], "TK-"))

	assert.Len(t, store.inserted, 1)
	saved := store.inserted[0]
	assert.Equal(t, resp["ticket"], saved.Ticket)
	assert.Equal(t, "Ana", saved.FirstName)
	assert.Equal(t, "ana@example.com", saved.Email)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestCreateContactStoreFailure(t *testing.T) {
	h := New(&stubStore{insertErr: errors.New("connection refused")}, config.Config{})

	body := `{"nombre": "Ana", "correo": "ana@example.com", "mensaje": "hola"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateContact(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateContactMissingFields(t *testing.T) {
	for _, body := range []string{
		`{"correo": "ana@example.com", "mensaje": "hola"}`,
		`{"nombre": "Ana", "mensaje": "hola"}`,
		`{"nombre": "Ana", "correo": "ana@example.com"}`,
	} {
		h := New(&stubStore{}, config.Config{})
		req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateContact(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestContactEmailBodies(t *testing.T) {
	c := contact.Contact{
		Ticket:    "TK-ABC12345",
		FirstName: "Ana",
		LastName:  "Rojas",
		Phone:     "+56 9 1234 5678",
		Email:     "ana@example.com",
		Message:   "Consulta por alternador",
		CreatedAt: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}

	subject, body := customerEmail(c)
	assert.Equal(t, "Hemos recibido tu solicitud - TK-ABC12345", subject)
	assert.Contains(t, body, "Hola Ana,")
	assert.Contains(t, body, "Tu número de ticket es: TK-ABC12345")
	assert.Contains(t, body, "Consulta por alternador")

	subject, body = adminEmail(c)
	assert.Equal(t, "Nueva solicitud de contacto - TK-ABC12345", subject)
	assert.Contains(t, body, "Nombre: Ana Rojas")
	assert.Contains(t, body, "Correo: ana@example.com")
	assert.Contains(t, body, "Teléfono: +56 9 1234 5678")
	assert.Contains(t, body, "Fecha: 01-09-2026 10:30")
}

func TestSendContactEmailsDisabledRelay(t *testing.T) {
	// No SMTP host configured: the notifier must return without dialing.
	h := New(&stubStore{}, config.Config{AdminEmail: "admin@example.com"})

	h.sendContactEmails(contact.Contact{Ticket: "TK-X", Email: "ana@example.com"})
}
