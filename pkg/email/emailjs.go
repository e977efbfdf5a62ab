package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const sendPath = "/api/v1.0/email/send"

// EmailJSSender delivers submissions through the hosted EmailJS REST API.
// One POST per submission; exactly HTTP 200 counts as an acknowledged
// delivery, anything else is a failure.
type EmailJSSender struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// EmailJSOption configures the EmailJS sender.
type EmailJSOption func(*EmailJSSender)

// WithHTTPClient replaces the default HTTP client. Nil clients are ignored.
func WithHTTPClient(c *http.Client) EmailJSOption {
	return func(s *EmailJSSender) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// WithLogger supplies a logger for diagnostic output. Nil loggers are ignored.
func WithLogger(l *slog.Logger) EmailJSOption {
	return func(s *EmailJSSender) {
		if l != nil {
			s.log = l
		}
	}
}

// NewEmailJS creates an EmailJS-backed sender. All three provider
// identifiers are required; misconfiguration fails here rather than on the
// first user submission.
func NewEmailJS(cfg Config, opts ...EmailJSOption) (*EmailJSSender, error) {
	if cfg.PublicKey == "" {
		return nil, fmt.Errorf("%w: PublicKey is required", ErrInvalidConfig)
	}
	if cfg.ServiceID == "" {
		return nil, fmt.Errorf("%w: ServiceID is required", ErrInvalidConfig)
	}
	if cfg.TemplateID == "" {
		return nil, fmt.Errorf("%w: TemplateID is required", ErrInvalidConfig)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}

	s := &EmailJSSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNewEmailJS creates an EmailJS sender that panics on invalid config,
// failing fast during startup.
func MustNewEmailJS(cfg Config, opts ...EmailJSOption) *EmailJSSender {
	s, err := NewEmailJS(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// sendRequest is the EmailJS send-email envelope.
type sendRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Payload `json:"template_params"`
}

// Send makes a single delivery attempt.
func (s *EmailJSSender) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      s.cfg.ServiceID,
		TemplateID:     s.cfg.TemplateID,
		UserID:         s.cfg.PublicKey,
		TemplateParams: p,
	})
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}

	url := strings.TrimSuffix(s.cfg.BaseURL, "/") + sendPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The relay replies with a short plain-text reason; keep it for logs.
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Join(
			ErrDeliveryFailed,
			fmt.Errorf("emailjs: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(reason))),
		)
	}

	s.log.DebugContext(ctx, "contact submission delivered",
		slog.String("reference_id", p.ReferenceID),
		slog.String("service_id", s.cfg.ServiceID),
	)
	return nil
}
