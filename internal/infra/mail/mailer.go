package mail

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Mailer sends plain-text notifications over SMTP. An empty Host disables
// sending, so local runs without a relay stay quiet.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *Mailer) Enabled() bool { return m.Host != "" }

func (m *Mailer) Send(to, subject, body string) error {
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	msg := message(m.From, to, subject, body)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, msg)
}

// message builds the RFC 5322 payload. Subjects carry accented Spanish, so
// the header goes through Q-encoding and the body is declared UTF-8.
func message(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
