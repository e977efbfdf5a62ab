package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/email"
)

func testPayload() email.Payload {
	return email.Payload{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "+212 600 000 000",
		Service:     "Autre",
		Message:     "Bonjour",
		Date:        "January 2, 2026 3:04 PM",
		ToEmail:     "jane@example.com",
		ReplyTo:     "jane@example.com",
		ReferenceID: "ref-123",
	}
}

func newSender(t *testing.T, baseURL string) *email.EmailJSSender {
	t.Helper()
	s, err := email.NewEmailJS(email.Config{
		PublicKey:  "pub_key",
		ServiceID:  "service_1",
		TemplateID: "template_1",
		BaseURL:    baseURL,
	})
	require.NoError(t, err)
	return s
}

func TestNewEmailJS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  email.Config
	}{
		{"missing public key", email.Config{ServiceID: "s", TemplateID: "t", BaseURL: "http://x"}},
		{"missing service id", email.Config{PublicKey: "p", TemplateID: "t", BaseURL: "http://x"}},
		{"missing template id", email.Config{PublicKey: "p", ServiceID: "s", BaseURL: "http://x"}},
		{"missing base url", email.Config{PublicKey: "p", ServiceID: "s", TemplateID: "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := email.NewEmailJS(tt.cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		_, err := email.NewEmailJS(email.Config{
			PublicKey: "p", ServiceID: "s", TemplateID: "t", BaseURL: "http://x",
		})
		assert.NoError(t, err)
	})

	t.Run("MustNewEmailJS panics on invalid config", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			email.MustNewEmailJS(email.Config{})
		})
	})
}

func TestEmailJSSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("delivers payload as template params", func(t *testing.T) {
		t.Parallel()

		var got struct {
			ServiceID      string         `json:"service_id"`
			TemplateID     string         `json:"template_id"`
			UserID         string         `json:"user_id"`
			TemplateParams map[string]any `json:"template_params"`
		}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := newSender(t, srv.URL).Send(context.Background(), testPayload())
		require.NoError(t, err)

		assert.Equal(t, "service_1", got.ServiceID)
		assert.Equal(t, "template_1", got.TemplateID)
		assert.Equal(t, "pub_key", got.UserID)
		assert.Equal(t, "Jane", got.TemplateParams["firstname"])
		assert.Equal(t, "jane@example.com", got.TemplateParams["reply_to"])
		assert.NotContains(t, got.TemplateParams, "reference_id", "correlation id stays out of template params")
	})

	t.Run("non-200 status is a delivery failure", func(t *testing.T) {
		t.Parallel()
		for _, status := range []int{http.StatusAccepted, http.StatusBadRequest, http.StatusTooManyRequests, http.StatusInternalServerError} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			err := newSender(t, srv.URL).Send(context.Background(), testPayload())
			assert.ErrorIs(t, err, email.ErrDeliveryFailed, "status %d", status)
			srv.Close()
		}
	})

	t.Run("transport fault is a delivery failure", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // connection refused from here on

		err := newSender(t, srv.URL).Send(context.Background(), testPayload())
		assert.ErrorIs(t, err, email.ErrDeliveryFailed)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := newSender(t, srv.URL).Send(ctx, testPayload())
		assert.ErrorIs(t, err, email.ErrDeliveryFailed)
	})
}
