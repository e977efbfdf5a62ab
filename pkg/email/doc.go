// Package email delivers contact form submissions to a hosted email-relay
// provider.
//
// The package is built around the Sender interface so providers can be
// swapped without touching form logic:
//
//   - EmailJSSender posts the submission to the EmailJS REST API with the
//     configured publishable key, service id, and template id. Exactly HTTP
//     200 is treated as an acknowledged delivery.
//   - PostmarkSender sends the submission as a transactional email through
//     Postmark for deployments that already use it.
//   - DevSender saves submissions as JSON files for local development.
//
// Every implementation makes a single best-effort attempt per submission.
// There is no retry, no offline queue, and no distinction between transient
// and permanent failures: callers surface one generic retry prompt and log
// the wrapped cause.
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	sender := email.MustNewEmailJS(cfg)
//	err := sender.Send(ctx, email.Payload{
//		FirstName: "Jane",
//		Email:     "jane@example.com",
//		ReplyTo:   "jane@example.com",
//	})
//	if errors.Is(err, email.ErrDeliveryFailed) {
//		// prompt the user to retry
//	}
package email
