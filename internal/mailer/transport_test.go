package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/maheshmahi224/backtobase/internal/config"
	"github.com/maheshmahi224/backtobase/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSMTPConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:        "smtp.example.com",
		Port:        465,
		Username:    "mailer@example.com",
		Password:    "app-password",
		FromName:    "Events",
		FromEmail:   "events@example.com",
		SendTimeout: 30 * time.Second,
	}
}

func TestNewSMTPTransport(t *testing.T) {
	tr, err := NewSMTPTransport(validSMTPConfig())

	require.NoError(t, err)
	assert.NotNil(t, tr)
}

func TestNewSMTPTransport_MissingHost(t *testing.T) {
	cfg := validSMTPConfig()
	cfg.Host = ""

	_, err := NewSMTPTransport(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "host")
}

func TestNewSMTPTransport_MissingCredentials(t *testing.T) {
	for _, tc := range []struct {
		name string
		mut  func(*config.SMTPConfig)
	}{
		{"no username", func(c *config.SMTPConfig) { c.Username = "" }},
		{"no password", func(c *config.SMTPConfig) { c.Password = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validSMTPConfig()
			tc.mut(&cfg)

			_, err := NewSMTPTransport(cfg)

			require.Error(t, err)
		})
	}
}

func TestNewSMTPTransport_FromFallsBackToUsername(t *testing.T) {
	cfg := validSMTPConfig()
	cfg.FromEmail = ""

	tr, err := NewSMTPTransport(cfg)

	require.NoError(t, err)
	assert.Equal(t, cfg.Username, tr.cfg.FromEmail)
}

func TestSMTPTransport_Send_EmptyRecipient(t *testing.T) {
	tr, err := NewSMTPTransport(validSMTPConfig())
	require.NoError(t, err)

	_, err = tr.Send(context.Background(), domain.SendUnit{Subject: "x", HTML: "<p>x</p>"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipient")
}
