package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/maheshmahi224/backtobase/internal/config"
	"github.com/maheshmahi224/backtobase/internal/domain"
	mail "gopkg.in/gomail.v2"
)

// Transport delivers a single rendered email. Implementations report ordinary
// delivery failures as errors; they never panic for a bad recipient.
type Transport interface {
	Send(ctx context.Context, unit domain.SendUnit) (string, error)
}

// SMTPTransport sends mail through one SMTP endpoint via gomail. A dialer is
// cheap to hold; each Send opens its own connection, so concurrent units never
// share message framing.
type SMTPTransport struct {
	dialer *mail.Dialer
	cfg    config.SMTPConfig
}

// NewSMTPTransport validates credentials up front. Missing host or
// credentials are configuration errors: no unit could ever succeed, so
// construction fails instead of producing a transport that fails every send.
func NewSMTPTransport(cfg config.SMTPConfig) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp transport: host is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp transport: username and password are required")
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = cfg.Username
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify,
	}
	if cfg.Port == 465 {
		d.SSL = true
	}

	return &SMTPTransport{dialer: d, cfg: cfg}, nil
}

// Send delivers one unit and returns a delivery id. The send runs under the
// configured timeout so a hung SMTP session cannot block a whole batch.
func (t *SMTPTransport) Send(ctx context.Context, unit domain.SendUnit) (string, error) {
	if unit.To == "" {
		return "", fmt.Errorf("send: empty recipient address")
	}

	m := mail.NewMessage()
	m.SetAddressHeader("From", t.cfg.FromEmail, t.cfg.FromName)
	m.SetHeader("To", unit.To)
	m.SetHeader("Subject", unit.Subject)
	if unit.Text != "" {
		m.SetBody("text/plain", unit.Text)
		m.AddAlternative("text/html", unit.HTML)
	} else {
		m.SetBody("text/html", unit.HTML)
	}

	for _, a := range unit.Attachments {
		content := a.Content
		m.Attach(a.Filename, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(content))
			return err
		}))
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.SendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- t.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("send to %s: %w", unit.To, err)
		}
	case <-ctx.Done():
		return "", fmt.Errorf("send to %s: %w", unit.To, ctx.Err())
	}

	return uuid.NewString(), nil
}
