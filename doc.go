// Package contactform implements a contact form widget: a field-state store
// for six inputs, a submission controller driving the
// idle -> sending -> success|error -> idle lifecycle, phone/email validation,
// and delivery through a pluggable email-relay sender.
//
// The Controller is the heart of the package. It validates in fixed order
// (phone before email, first failure wins), makes exactly one delivery
// attempt per accepted submission, resets the fields only after an
// acknowledged delivery, and automatically returns to idle after a short
// banner delay. A submission already in flight turns further Submit calls
// into no-ops, which is the widget's only concurrency-control mechanism.
//
//	sender := email.MustNewEmailJS(cfg)
//	ctrl := contactform.New(sender, contactform.WithLogger(log))
//
//	_ = ctrl.SetField(contactform.FieldEmail, "jane@example.com")
//	_ = ctrl.SetField(contactform.FieldPhone, "+212 600 000 000")
//	err := ctrl.Submit(ctx)
//
// Widget and Page render the form as templ components; StyleTag injects the
// scoped stylesheet exactly once per process. Handler exposes the widget
// over HTTP for the demo server in cmd/server.
package contactform
