// Package validator provides rule-based validation for contact form fields.
//
// A Rule pairs a check with the FieldError reported when it fails. Apply runs
// rules in order and stops at the first failure, which matches the form's
// one-message-at-a-time error surface:
//
//	err := validator.Apply(
//		validator.ValidPhone("phone", fields.Phone),
//		validator.ValidEmail("email", fields.Email),
//	)
//	if validator.IsKind(err, validator.KindPhoneInvalid) {
//		// phone failed before email was even checked
//	}
package validator
