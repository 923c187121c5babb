package contact

// Phase is the submission lifecycle position of one form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Kind selects the visual treatment of a feedback message.
type Kind int

const (
	KindSuccess Kind = iota + 1
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return ""
	}
}

// Feedback is the text shown on the feedback surface.  The zero value hides
// the surface.
type Feedback struct {
	Text string
	Kind Kind
}

// Empty reports whether the surface should be hidden.
func (f Feedback) Empty() bool { return f.Text == "" }

// State is the UI-facing state of one form.  Label holds the button's
// original caption while a submission is in flight.
type State struct {
	Phase    Phase
	Feedback Feedback
	Label    string
}

// ButtonEnabled is false iff a submission is in flight.
func (s State) ButtonEnabled() bool { return s.Phase != PhaseSubmitting }
