package email

import "context"

// Payload carries one contact submission to the relay provider. It exists
// only for the duration of a single outbound call and is never persisted.
// JSON keys match the relay template's parameter names.
type Payload struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	Date      string `json:"date"`     // formatted local timestamp of the submission
	ToEmail   string `json:"to_email"` // template-side recipient parameter
	ReplyTo   string `json:"reply_to"` // always the submitted email address

	// ReferenceID correlates log lines with a single submission. It is not
	// part of the relay template parameters.
	ReferenceID string `json:"-"`
}

// Sender delivers one contact submission. Implementations make a single
// best-effort attempt; there is deliberately no retry, timeout override, or
// circuit breaking at this layer.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}
