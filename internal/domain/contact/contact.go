package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is one submitted contact-form message with its assigned ticket.
type Contact struct {
	Ticket    string
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Message   string
	CreatedAt time.Time
}

// NewTicket issues a short human-quotable ticket id.
func NewTicket() string {
	return "TK-" + strings.ToUpper(uuid.NewString()[:8])
}
