package contactform

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// MsgSuccess is the confirmation banner shown after an acknowledged delivery.
const MsgSuccess = "Your message has been sent. Thank you!"

// ServiceOptions are the choices offered by the service select control.
var ServiceOptions = []string{"Web design", "Branding", "SEO", "Autre"}

// Widget renders the contact form for the given snapshot: status banner,
// two-column name row, email/phone/service/message inputs, the required
// consent checkbox, and a submit button that reflects the submission status.
// Input identifiers are stable (firstname, lastname, email, phone, service,
// message) for external styling and tests.
func Widget(s Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		disabled := ""
		if s.Status == StatusSending {
			disabled = " disabled"
		}

		if _, err := fmt.Fprint(w, `<form id="contact-form" class="cf-form" method="post" action="/contact">`); err != nil {
			return err
		}

		if err := writeBanner(w, s); err != nil {
			return err
		}

		// Two-column name row.
		if _, err := fmt.Fprint(w, `<div class="cf-row">`); err != nil {
			return err
		}
		if err := writeInput(w, "text", FieldFirstName, "First name", s.Fields.FirstName, disabled); err != nil {
			return err
		}
		if err := writeInput(w, "text", FieldLastName, "Last name", s.Fields.LastName, disabled); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, `</div>`); err != nil {
			return err
		}

		if err := writeInput(w, "email", FieldEmail, "Email", s.Fields.Email, disabled); err != nil {
			return err
		}
		if err := writeInput(w, "tel", FieldPhone, "Phone", s.Fields.Phone, disabled); err != nil {
			return err
		}
		if err := writeServiceSelect(w, s.Fields.Service, disabled); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<div class="cf-field"><label for="message">Message</label>`+
				`<textarea id="message" name="message" rows="5"%s>%s</textarea></div>`,
			disabled, html.EscapeString(s.Fields.Message)); err != nil {
			return err
		}

		checked := ""
		if s.Consent {
			checked = " checked"
		}
		if _, err := fmt.Fprintf(w,
			`<div class="cf-consent"><input type="checkbox" id="consent" name="consent" required%s%s>`+
				`<label for="consent">I agree to be contacted about my request.</label></div>`,
			checked, disabled); err != nil {
			return err
		}

		label := "Send message"
		if s.Status == StatusSending {
			label = "Sending..."
		}
		if _, err := fmt.Fprintf(w, `<button type="submit" id="submit" class="cf-submit"%s>%s</button>`, disabled, label); err != nil {
			return err
		}

		_, err := fmt.Fprint(w, `</form>`)
		return err
	})
}

func writeBanner(w io.Writer, s Snapshot) error {
	switch s.Status {
	case StatusSuccess:
		_, err := fmt.Fprintf(w, `<div class="cf-banner cf-banner-success" role="alert">%s</div>`, html.EscapeString(MsgSuccess))
		return err
	case StatusError:
		_, err := fmt.Fprintf(w, `<div class="cf-banner cf-banner-error" role="alert">%s</div>`, html.EscapeString(s.ErrorMessage))
		return err
	}
	return nil
}

func writeInput(w io.Writer, inputType string, field Field, label, value, disabled string) error {
	name := string(field)
	_, err := fmt.Fprintf(w,
		`<div class="cf-field"><label for="%s">%s</label>`+
			`<input type="%s" id="%s" name="%s" value="%s" required%s></div>`,
		name, html.EscapeString(label), inputType, name, name, html.EscapeString(value), disabled)
	return err
}

func writeServiceSelect(w io.Writer, selected, disabled string) error {
	if _, err := fmt.Fprintf(w,
		`<div class="cf-field"><label for="service">Service</label>`+
			`<select id="service" name="service" required%s><option value="">Choose a service</option>`,
		disabled); err != nil {
		return err
	}
	for _, opt := range ServiceOptions {
		sel := ""
		if opt == selected {
			sel = " selected"
		}
		escaped := html.EscapeString(opt)
		if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, escaped, sel, escaped); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, `</select></div>`)
	return err
}

// Page wraps the widget in a minimal HTML document, injecting the stylesheet
// through StyleTag.
func Page(s Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprint(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Contact</title>`); err != nil {
			return err
		}
		if err := StyleTag().Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, `</head><body><main class="cf-page">`); err != nil {
			return err
		}
		if err := Widget(s).Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprint(w, `</main></body></html>`)
		return err
	})
}
