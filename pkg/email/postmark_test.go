package email_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/email"
)

func TestNewPostmark(t *testing.T) {
	t.Parallel()

	valid := email.PostmarkConfig{
		ServerToken:  "server-token",
		AccountToken: "account-token",
		SenderEmail:  "noreply@example.com",
		InboxEmail:   "hello@example.com",
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewPostmark(valid)
		assert.NoError(t, err)
	})

	tests := []struct {
		name   string
		mutate func(cfg *email.PostmarkConfig)
	}{
		{"missing server token", func(cfg *email.PostmarkConfig) { cfg.ServerToken = "" }},
		{"missing account token", func(cfg *email.PostmarkConfig) { cfg.AccountToken = "" }},
		{"missing sender email", func(cfg *email.PostmarkConfig) { cfg.SenderEmail = "" }},
		{"malformed sender email", func(cfg *email.PostmarkConfig) { cfg.SenderEmail = "not-an-email" }},
		{"missing inbox email", func(cfg *email.PostmarkConfig) { cfg.InboxEmail = "" }},
		{"malformed inbox email", func(cfg *email.PostmarkConfig) { cfg.InboxEmail = "hello@nodomain" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)
			_, err := email.NewPostmark(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}
}
