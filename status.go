package contactform

import "github.com/dmitrymomot/contactform/pkg/statemachine"

// Submission lifecycle states. Exactly one error message accompanies
// StatusError; it is cleared when the machine re-enters StatusIdle.
const (
	StatusIdle    statemachine.State = "idle"
	StatusSending statemachine.State = "sending"
	StatusSuccess statemachine.State = "success"
	StatusError   statemachine.State = "error"
)

// Events driving the status machine.
const (
	eventSubmit statemachine.Event = "submit"
	eventAccept statemachine.Event = "accept"
	eventReject statemachine.Event = "reject"
	eventReset  statemachine.Event = "reset"
)

// newStatusMachine declares the only legal status transitions:
// idle -> sending, sending -> success|error, success|error -> idle.
func newStatusMachine() *statemachine.Machine {
	return statemachine.New(StatusIdle).
		AddTransition(StatusIdle, eventSubmit, StatusSending).
		AddTransition(StatusSending, eventAccept, StatusSuccess).
		AddTransition(StatusSending, eventReject, StatusError).
		AddTransition(StatusSuccess, eventReset, StatusIdle).
		AddTransition(StatusError, eventReset, StatusIdle)
}
