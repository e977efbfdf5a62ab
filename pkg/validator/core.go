package validator

import "errors"

// Kind classifies a validation failure so callers can branch on the cause
// without parsing messages.
type Kind string

const (
	KindPhoneInvalid    Kind = "phone_invalid"
	KindEmailInvalid    Kind = "email_invalid"
	KindFieldRequired   Kind = "field_required"
	KindConsentRequired Kind = "consent_required"
)

// FieldError describes a single failed check on a named field.
type FieldError struct {
	Field   string
	Kind    Kind
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Err   FieldError
}

// Apply runs rules in order and returns the first failure, or nil when all
// pass. Single-error reporting is intentional: the form surfaces one message
// at a time, so rule order defines which problem the user sees first.
func Apply(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return rule.Err
		}
	}
	return nil
}

// IsKind reports whether err is a FieldError of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe FieldError
	return errors.As(err, &fe) && fe.Kind == kind
}
