package contactform

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/statemachine"
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// DefaultResetDelay is how long a success or error banner stays up before
// the form automatically returns to idle.
const DefaultResetDelay = 5 * time.Second

// MsgDeliveryFailed is the generic retry prompt shown for any delivery
// failure. Transient and permanent relay problems deliberately look the
// same to the visitor; the wrapped cause goes to the log.
const MsgDeliveryFailed = "Something went wrong while sending your message. Please try again."

// dateFormat renders the submission timestamp for the relay template.
const dateFormat = "January 2, 2006 3:04 PM"

// Snapshot is an immutable view of the widget for the presentation layer.
type Snapshot struct {
	Fields       Fields
	Consent      bool
	Status       statemachine.State
	ErrorMessage string
}

// Controller owns the field-state store and drives each submission through
// the idle -> sending -> success|error -> idle lifecycle. All methods are
// safe for concurrent use; a submission already in flight makes any further
// Submit call a no-op.
type Controller struct {
	mu      sync.Mutex
	fields  Fields
	consent bool
	errMsg  string
	machine *statemachine.Machine

	sender     email.Sender
	log        *slog.Logger
	now        func() time.Time
	newID      func() string
	resetDelay time.Duration
	onChange   func(Snapshot)

	// Pending auto-reset bookkeeping. The stored handle lets a new submit
	// cancel the timer explicitly; the generation counter catches a timer
	// that already fired past Stop so a stale reset can never clobber a
	// newer state.
	resetTimer *time.Timer
	resetGen   uint64
}

// Option configures the controller.
type Option func(*Controller)

// WithLogger supplies a logger for diagnostic output. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock replaces the timestamp source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithResetDelay overrides how long success/error states persist before the
// automatic return to idle.
func WithResetDelay(d time.Duration) Option {
	if d <= 0 {
		panic("WithResetDelay: duration must be > 0")
	}
	return func(c *Controller) { c.resetDelay = d }
}

// WithOnChange registers a hook invoked with a fresh snapshot after every
// observable change, the server-side analog of a re-render trigger. The hook
// runs outside the controller lock.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithIDGenerator replaces the submission reference ID source, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a Controller delivering through the given sender.
func New(sender email.Sender, opts ...Option) *Controller {
	if sender == nil {
		panic("contactform: nil sender")
	}
	c := &Controller{
		machine:    newStatusMachine(),
		sender:     sender,
		log:        slog.New(slog.DiscardHandler),
		now:        time.Now,
		newID:      uuid.NewString,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetField replaces exactly one field's value, leaving the others untouched.
// No validation happens here; that is Submit's job.
func (c *Controller) SetField(name Field, value string) error {
	c.mu.Lock()
	err := c.fields.set(name, value)
	snap := c.snapshotLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	c.notify(snap)
	return nil
}

// SetConsent records the state of the consent checkbox.
func (c *Controller) SetConsent(checked bool) {
	c.mu.Lock()
	c.consent = checked
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Snapshot returns the current fields, consent, status, and error message.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Status returns the current submission status.
func (c *Controller) Status() statemachine.State {
	return c.machine.Current()
}

// Submit validates the current fields and makes at most one delivery
// attempt. Calling it while a submission is already in flight is a no-op and
// returns nil. Validation and delivery failures are reflected in the status
// (with a user-facing message) and also returned to the caller.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.machine.Current() == StatusSending {
		c.mu.Unlock()
		return nil
	}

	c.cancelPendingResetLocked()
	// A submit from a lingering success/error banner supersedes the pending
	// auto-reset: last state wins.
	if cur := c.machine.Current(); cur == StatusSuccess || cur == StatusError {
		_, _ = c.machine.Fire(eventReset)
	}
	c.errMsg = ""

	if _, err := c.machine.Fire(eventSubmit); err != nil {
		c.mu.Unlock()
		return err
	}

	if err := c.validateLocked(); err != nil {
		c.rejectLocked(userMessage(err))
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return err
	}

	payload := c.payloadLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	err := c.sender.Send(ctx, payload)

	c.mu.Lock()
	if err != nil {
		c.log.ErrorContext(ctx, "contact delivery failed",
			slog.String("reference_id", payload.ReferenceID),
			slog.Any("error", err),
		)
		c.rejectLocked(MsgDeliveryFailed)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snap)
		return err
	}

	_, _ = c.machine.Fire(eventAccept)
	c.fields = Fields{}
	c.consent = false
	c.scheduleResetLocked()
	c.log.InfoContext(ctx, "contact delivery acknowledged",
		slog.String("reference_id", payload.ReferenceID),
	)
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
	return nil
}

// validateLocked runs the fixed-order checks: phone, then email, then the
// required-field constraints the browser used to enforce. Only the first
// failure surfaces.
func (c *Controller) validateLocked() error {
	return validator.Apply(
		validator.ValidPhone(string(FieldPhone), c.fields.Phone),
		validator.ValidEmail(string(FieldEmail), c.fields.Email),
		validator.Required(string(FieldFirstName), c.fields.FirstName),
		validator.Required(string(FieldLastName), c.fields.LastName),
		validator.Required(string(FieldService), c.fields.Service),
		validator.Checked("consent", c.consent),
	)
}

func (c *Controller) payloadLocked() email.Payload {
	return email.Payload{
		FirstName:   c.fields.FirstName,
		LastName:    c.fields.LastName,
		Email:       c.fields.Email,
		Phone:       c.fields.Phone,
		Service:     c.fields.Service,
		Message:     c.fields.Message,
		Date:        c.now().Format(dateFormat),
		ToEmail:     c.fields.Email,
		ReplyTo:     c.fields.Email,
		ReferenceID: c.newID(),
	}
}

func (c *Controller) rejectLocked(msg string) {
	_, _ = c.machine.Fire(eventReject)
	c.errMsg = msg
	c.scheduleResetLocked()
}

func (c *Controller) scheduleResetLocked() {
	gen := c.resetGen
	c.resetTimer = time.AfterFunc(c.resetDelay, func() { c.autoReset(gen) })
}

func (c *Controller) cancelPendingResetLocked() {
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.resetGen++
}

// autoReset returns the machine to idle after the banner delay, unless a
// newer submit superseded this timer.
func (c *Controller) autoReset(gen uint64) {
	c.mu.Lock()
	if gen != c.resetGen {
		c.mu.Unlock()
		return
	}
	c.resetTimer = nil
	if _, err := c.machine.Fire(eventReset); err != nil {
		c.mu.Unlock()
		return
	}
	c.errMsg = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Fields:       c.fields,
		Consent:      c.consent,
		Status:       c.machine.Current(),
		ErrorMessage: c.errMsg,
	}
}

func (c *Controller) notify(snap Snapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}

// userMessage strips the field prefix from validator errors so only the
// fixed user-facing message reaches the banner.
func userMessage(err error) string {
	var fe validator.FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
