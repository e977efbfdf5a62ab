package contactform

import (
	"errors"
	"fmt"
)

// ErrUnknownField is returned when an update names a field outside the
// closed enumeration.
var ErrUnknownField = errors.New("contactform.errors.unknown_field")

// Field identifies one form input. Updates are keyed by this closed
// enumeration rather than arbitrary strings so a typo fails instead of
// silently creating a new field.
type Field string

const (
	FieldFirstName Field = "firstname"
	FieldLastName  Field = "lastname"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldService   Field = "service"
	FieldMessage   Field = "message"
)

// TextFields lists the text/selection fields in the order they appear on the
// form. The consent checkbox is tracked separately as a boolean.
func TextFields() []Field {
	return []Field{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldService, FieldMessage}
}

// Fields holds the current value of every form input. Each update replaces
// exactly one field; values are cleared only after a confirmed successful
// delivery.
type Fields struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Service   string
	Message   string
}

func (f *Fields) set(name Field, value string) error {
	switch name {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldService:
		f.Service = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}
