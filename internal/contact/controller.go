// internal/contact/controller.go
//
// Folio – Contact workflow: submission controller.
//
// Context
//   Controller runs one submission attempt end to end:
//
//     extract → validate ─┬─ rejected → error feedback, stop
//                         └─ accepted → disable button, label "Sending..."
//                                       → POST → success / declined / fault
//                                       → restore button and label
//
//   The restore step is deferred, so it runs after every outcome, including a
//   panicking Sender.  Nothing escapes Submit: transport faults become the
//   generic network-error message and are logged; rejections are only shown.
//
//   After a successful send the feedback is cleared after ClearAfter.  Any new
//   attempt cancels a pending clear, and a generation counter drops clears that
//   already fired but lost the race for the lock.
//
// Notes
//   • One attempt at a time.  A Submit that arrives while another is in flight
//     returns OutcomeBusy, matching the disabled button on the page.
//   • Observer sees every attempt exactly once.
//
//------------------------------------------------------------------------------

package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultEndpoint is the intake API the portfolio page talks to.
	DefaultEndpoint = "http://localhost:8080/api/contact"
	// DefaultSubject tags every submission with its origin.
	DefaultSubject = "Portfolio Contact Form Submission"
	// DefaultSendingLabel replaces the button caption while sending.
	DefaultSendingLabel = "Sending..."
	// DefaultClearAfter is how long success feedback stays visible.
	DefaultClearAfter = 5 * time.Second

	SuccessMarker = "✅ "
	FailureMarker = "❌ "

	sentFallbackText     = "Message sent successfully"
	declinedFallbackText = "Failed to send message"
	networkErrorText     = "Network error. Please try again later."
)

// Outcome is the result of one Submit call.
type Outcome int

const (
	OutcomeRejected Outcome = iota + 1 // failed validation, nothing sent
	OutcomeSent                        // server accepted the message
	OutcomeDeclined                    // server answered success=false
	OutcomeFault                       // request or reply failed
	OutcomeBusy                        // another attempt was in flight
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeSent:
		return "sent"
	case OutcomeDeclined:
		return "declined"
	case OutcomeFault:
		return "fault"
	case OutcomeBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// Sender performs the network exchange.  *Client implements it.
type Sender interface {
	Send(ctx context.Context, sub Submission) (Reply, error)
}

// Observer is told about every finished attempt.
type Observer interface {
	Observe(o Outcome, took time.Duration)
}

// Options tunes a Controller.  Zero fields take the defaults above.
type Options struct {
	Subject      string
	SendingLabel string
	ClearAfter   time.Duration
	Observer     Observer
}

// DefaultOptions returns the settings the portfolio page ships with.
func DefaultOptions() Options {
	return Options{
		Subject:      DefaultSubject,
		SendingLabel: DefaultSendingLabel,
		ClearAfter:   DefaultClearAfter,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Subject == "" {
		o.Subject = d.Subject
	}
	if o.SendingLabel == "" {
		o.SendingLabel = d.SendingLabel
	}
	if o.ClearAfter <= 0 {
		o.ClearAfter = d.ClearAfter
	}
	return o
}

// afterFunc schedules f and returns a stop function.
type afterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfter(d time.Duration, f func()) func() bool { return time.AfterFunc(d, f).Stop }

// Controller owns the SubmissionState of one form.
type Controller struct {
	fields  Fields
	surface Surface
	sender  Sender
	log     *zap.SugaredLogger
	opts    Options
	after   afterFunc

	mu        sync.Mutex
	state     State
	gen       uint64
	stopClear func() bool
}

// NewController wires a workflow to one form.  A nil log discards output.
func NewController(f Fields, s Surface, sender Sender, log *zap.SugaredLogger, opts Options) *Controller {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Controller{
		fields:  f,
		surface: s,
		sender:  sender,
		log:     log,
		opts:    opts.withDefaults(),
		after:   timeAfter,
	}
}

// State returns a copy of the current SubmissionState.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs one attempt.  It never returns an error; see Outcome.
func (c *Controller) Submit(ctx context.Context) Outcome {
	start := time.Now()

	c.mu.Lock()
	if c.state.Phase == PhaseSubmitting {
		c.mu.Unlock()
		return OutcomeBusy
	}
	c.cancelClearLocked()
	c.state.Label = c.surface.ButtonLabel()

	in := Extract(c.fields)
	if err := Validate(in); err != nil {
		text := reasonText[ReasonMissingField]
		var rj *Rejection
		if errors.As(err, &rj) {
			text = rj.Text
		}
		c.state.Feedback = Feedback{Text: text, Kind: KindError}
		c.renderLocked()
		c.mu.Unlock()

		c.log.Debugw("contact input rejected", "reason", err)
		c.observe(OutcomeRejected, start)
		return OutcomeRejected
	}

	c.state.Phase = PhaseSubmitting
	c.renderLocked()
	c.mu.Unlock()

	out := c.exchange(ctx, in)
	c.observe(out, start)
	return out
}

// exchange sends in and always hands the result to finish.
func (c *Controller) exchange(ctx context.Context, in FormInput) (out Outcome) {
	fb := Feedback{Text: FailureMarker + networkErrorText, Kind: KindError}
	out = OutcomeFault

	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("contact form error", "panic", r)
			fb = Feedback{Text: FailureMarker + networkErrorText, Kind: KindError}
			out = OutcomeFault
		}
		c.finish(fb, out == OutcomeSent)
	}()

	rep, err := c.sender.Send(ctx, Submission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		Subject: c.opts.Subject,
	})

	switch {
	case err != nil:
		c.log.Errorw("contact form error", "err", err)
	case rep.Success:
		text := rep.Message
		if text == "" {
			text = sentFallbackText
		}
		fb = Feedback{Text: SuccessMarker + text, Kind: KindSuccess}
		out = OutcomeSent
	default:
		text := rep.Message
		if text == "" {
			text = declinedFallbackText
		}
		fb = Feedback{Text: FailureMarker + text, Kind: KindError}
		out = OutcomeDeclined
	}
	return out
}

// finish renders the result and restores the button.
func (c *Controller) finish(fb Feedback, sent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Phase = PhaseCompleted
	c.state.Feedback = fb
	c.state.Phase = PhaseIdle
	c.renderLocked()

	if sent {
		c.scheduleClearLocked()
		c.fields.Reset()
	}
}

func (c *Controller) renderLocked() {
	c.surface.Apply(Project(c.state, c.state.Label, c.opts.SendingLabel))
}

func (c *Controller) scheduleClearLocked() {
	c.gen++
	gen := c.gen
	c.stopClear = c.after(c.opts.ClearAfter, func() { c.clearFeedback(gen) })
}

func (c *Controller) cancelClearLocked() {
	c.gen++
	if c.stopClear != nil {
		c.stopClear()
		c.stopClear = nil
	}
}

func (c *Controller) clearFeedback(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.stopClear = nil
	c.state.Feedback = Feedback{}
	c.renderLocked()
}

func (c *Controller) observe(o Outcome, start time.Time) {
	if c.opts.Observer != nil {
		c.opts.Observer.Observe(o, time.Since(start))
	}
}
