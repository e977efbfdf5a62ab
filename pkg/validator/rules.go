package validator

import (
	"regexp"
	"strings"
)

var (
	// Accepts an optional leading "+", an optional parenthesized first group,
	// and 3+3+(4-6) digit grouping separated by space, dot, or hyphen. The
	// separator is also tolerated inside the final group, so numbers like
	// "+212 600 000 000" pass.
	phoneRegex = regexp.MustCompile(`^\+?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{3}[\s.-]?\d{1,3}$`)

	// Deliberately loose: no whitespace, exactly one "@", at least one dot in
	// the domain part. Deliverability is the relay provider's problem.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Fixed user-facing messages surfaced next to the form.
const (
	MsgPhoneInvalid    = "Please enter a valid phone number."
	MsgEmailInvalid    = "Please enter a valid email address."
	MsgFieldRequired   = "This field is required."
	MsgConsentRequired = "Please accept the privacy policy before sending."
)

// ValidPhone validates a phone number against the tolerant grouping pattern.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(strings.TrimSpace(value))
		},
		Err: FieldError{
			Field:   field,
			Kind:    KindPhoneInvalid,
			Message: MsgPhoneInvalid,
		},
	}
}

// ValidEmail validates a local@domain.tld shaped address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(strings.TrimSpace(value))
		},
		Err: FieldError{
			Field:   field,
			Kind:    KindEmailInvalid,
			Message: MsgEmailInvalid,
		},
	}
}

// Required validates that a string is not empty or whitespace-only.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Err: FieldError{
			Field:   field,
			Kind:    KindFieldRequired,
			Message: MsgFieldRequired,
		},
	}
}

// Checked validates that a boolean control (the consent checkbox) is set.
func Checked(field string, value bool) Rule {
	return Rule{
		Check: func() bool { return value },
		Err: FieldError{
			Field:   field,
			Kind:    KindConsentRequired,
			Message: MsgConsentRequired,
		},
	}
}
