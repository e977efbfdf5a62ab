package email

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkConfig holds configuration for the Postmark-backed sender.
// InboxEmail is the mailbox that receives contact submissions.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"SENDER_EMAIL"`
	InboxEmail   string `env:"CONTACT_INBOX_EMAIL"`
}

// PostmarkSender delivers submissions as transactional emails through
// Postmark instead of a template-based relay. Useful when the site owner
// already runs their outbound mail through Postmark.
type PostmarkSender struct {
	client *postmark.Client
	cfg    PostmarkConfig
}

// NewPostmark creates a Postmark-backed sender.
func NewPostmark(cfg PostmarkConfig) (*PostmarkSender, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: ServerToken is required", ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: AccountToken is required", ErrInvalidConfig)
	}
	if !emailShape(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if !emailShape(cfg.InboxEmail) {
		return nil, fmt.Errorf("%w: InboxEmail must be a valid email address", ErrInvalidConfig)
	}

	return &PostmarkSender{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		cfg:    cfg,
	}, nil
}

// Send renders the payload into a plain transactional email addressed to the
// configured inbox, with Reply-To pointing back at the visitor.
func (s *PostmarkSender) Send(ctx context.Context, p Payload) error {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.cfg.SenderEmail,
		To:       s.cfg.InboxEmail,
		ReplyTo:  p.ReplyTo,
		Subject:  fmt.Sprintf("New contact request from %s %s", p.FirstName, p.LastName),
		Tag:      "contact-form",
		HTMLBody: renderSubmissionHTML(p),
	})
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrDeliveryFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}

func renderSubmissionHTML(p Payload) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	rows := []struct{ label, value string }{
		{"Name", p.FirstName + " " + p.LastName},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Service", p.Service},
		{"Date", p.Date},
		{"Message", p.Message},
	}
	b.WriteString("<table>")
	for _, row := range rows {
		b.WriteString("<tr><td><strong>")
		b.WriteString(html.EscapeString(row.label))
		b.WriteString("</strong></td><td>")
		b.WriteString(html.EscapeString(row.value))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func emailShape(value string) bool {
	at := strings.Count(value, "@")
	if value == "" || at != 1 || strings.ContainsAny(value, " \t") {
		return false
	}
	domain := value[strings.Index(value, "@")+1:]
	return strings.Contains(domain, ".")
}
