// Package statemachine implements a minimal finite state machine with a
// fixed transition table.
//
// It exists to make small lifecycles explicit: every legal move is declared
// up front and anything else fails loudly instead of silently corrupting
// state.
//
//	m := statemachine.New("idle").
//		AddTransition("idle", "submit", "sending").
//		AddTransition("sending", "accept", "success")
//
//	if _, err := m.Fire("accept"); err != nil {
//		// still "idle": accept is not legal here
//	}
package statemachine
