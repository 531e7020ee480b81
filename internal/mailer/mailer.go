package mailer

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/katachat/investor-insight-agent/internal/config"
)

// Sender delivers one HTML message. The HTTP handler depends on this so
// tests can capture sends without a live SMTP session.
type Sender interface {
	Send(subject, htmlBody string) error
}

// Mailer sends HTML reports from the service mailbox back to itself over
// SMTP with STARTTLS. Delivery is best-effort; callers log and swallow
// errors.
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

func New(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		username: config.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

// Send performs one blocking delivery attempt. No retry.
func (m *Mailer) Send(subject, htmlBody string) error {
	if m.password == "" {
		return eris.Wrap(config.ErrMissingKey, "SMTP password not set, cannot send mail")
	}

	msg := buildMessage(m.username, m.username, subject, htmlBody)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := m.sendSTARTTLS(addr, auth, msg); err != nil {
		return eris.Wrap(err, "mail delivery failed")
	}
	return nil
}

func (m *Mailer) sendSTARTTLS(addr string, auth smtp.Auth, msg string) error {
	c, err := smtp.Dial(addr)
	if err != nil {
		return eris.Wrap(err, "smtp dial")
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
		return eris.Wrap(err, "starttls")
	}
	if err := c.Auth(auth); err != nil {
		return eris.Wrap(err, "smtp auth")
	}
	if err := c.Mail(m.username); err != nil {
		return eris.Wrap(err, "mail from")
	}
	if err := c.Rcpt(m.username); err != nil {
		return eris.Wrap(err, "rcpt to")
	}
	w, err := c.Data()
	if err != nil {
		return eris.Wrap(err, "data")
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return eris.Wrap(err, "write body")
	}
	if err := w.Close(); err != nil {
		return eris.Wrap(err, "close body")
	}
	return c.Quit()
}

// buildMessage assembles a single-part text/html message. The body is
// base64-encoded so long inline-styled lines stay within the RFC 5322 line
// limit; the subject is Q-encoded for its non-ASCII characters.
func buildMessage(from, to, subject, htmlBody string) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	fmt.Fprintf(&msg, "Message-ID: <%s@%s>\r\n", uuid.NewString(), config.SMTPHost)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("Content-Transfer-Encoding: base64\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(encodeBase64WithLineBreaks(htmlBody))
	msg.WriteString("\r\n")
	return msg.String()
}

func encodeBase64WithLineBreaks(s string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(s))
	var b strings.Builder
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	return b.String()
}
