// internal/contact/view.go
//
// Folio – Contact workflow: feedback projection.
//
// Context
//   Project turns a State into the exact UI the form should show.  It has no
//   side effects, so equal states always give equal views and rendering twice
//   is the same as rendering once.  A Surface (DOM or terminal) applies the
//   View.
//
//------------------------------------------------------------------------------

package contact

// Style is the kind-specific treatment of the feedback surface.
type Style struct {
	Background string
	Color      string
	BorderLeft string
}

var palette = map[Kind]Style{
	KindSuccess: {Background: "#d4edda", Color: "#155724", BorderLeft: "4px solid #28a745"},
	KindError:   {Background: "#f8d7da", Color: "#721c24", BorderLeft: "4px solid #f5222d"},
}

// View is everything a Surface needs to draw the form's dynamic parts.
type View struct {
	ButtonDisabled  bool
	ButtonLabel     string
	FeedbackVisible bool
	FeedbackText    string
	FeedbackKind    Kind
	Style           Style
}

// Surface is the write side of a contact form.
type Surface interface {
	// ButtonLabel returns the submit control's current caption.
	ButtonLabel() string
	Apply(View)
}

// Project maps s to a View.  idleLabel is the caption shown outside a
// submission; sending replaces it while one is in flight.
func Project(s State, idleLabel, sending string) View {
	vw := View{
		ButtonDisabled: !s.ButtonEnabled(),
		ButtonLabel:    idleLabel,
	}
	if vw.ButtonDisabled {
		vw.ButtonLabel = sending
	}
	if !s.Feedback.Empty() {
		vw.FeedbackVisible = true
		vw.FeedbackText = s.Feedback.Text
		vw.FeedbackKind = s.Feedback.Kind
		vw.Style = palette[s.Feedback.Kind]
	}
	return vw
}
