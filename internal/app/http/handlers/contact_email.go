package handlers

import (
	"fmt"
	"log"

	"nf-demos/go_backend/internal/domain/contact"
)

func customerEmail(c contact.Contact) (subject, body string) {
	subject = fmt.Sprintf("Hemos recibido tu solicitud - %s", c.Ticket)
	body = fmt.Sprintf(`Hola %s,

Gracias por contactarnos. Hemos recibido tu solicitud correctamente.

Tu número de ticket es: %s

Detalles de tu consulta:
%s

Nos pondremos en contacto contigo a la brevedad.

Saludos,
NF Demos
`, c.FirstName, c.Ticket, c.Message)
	return subject, body
}

func adminEmail(c contact.Contact) (subject, body string) {
	subject = fmt.Sprintf("Nueva solicitud de contacto - %s", c.Ticket)
	body = fmt.Sprintf(`Nueva solicitud de contacto recibida:

Ticket: %s
Nombre: %s %s
Teléfono: %s
Correo: %s

Mensaje:
%s

Fecha: %s
`, c.Ticket, c.FirstName, c.LastName, c.Phone, c.Email, c.Message, c.CreatedAt.Format("02-01-2006 15:04"))
	return subject, body
}

// sendContactEmails confirms the ticket to the customer and alerts the admin.
// Relay failures are logged and swallowed.
func (h *Handlers) sendContactEmails(c contact.Contact) {
	if !h.Mail.Enabled() {
		return
	}
	subject, body := customerEmail(c)
	if err := h.Mail.Send(c.Email, subject, body); err != nil {
		log.Printf("contact mail: customer notify failed: %v", err)
	}
	if h.Cfg.AdminEmail == "" {
		return
	}
	subject, body = adminEmail(c)
	if err := h.Mail.Send(h.Cfg.AdminEmail, subject, body); err != nil {
		log.Printf("contact mail: admin notify failed: %v", err)
	}
}
