// internal/contact/input.go
//
// Folio – Contact workflow: input extraction.
//
// Context
//   The contact form carries a name, an email, a message, and an optional
//   phone number.  Extract reads those raw values at submit time and trims
//   them.  The result is a FormInput that lives for one attempt only.
//
//------------------------------------------------------------------------------

package contact

import "strings"

// Fields is the read side of a contact form.  The DOM binding and the
// terminal front-end both implement it.
type Fields interface {
	Text() string
	Email() string
	Message() string
	// Phone reports false when the form has no telephone input.
	Phone() (string, bool)
	// Reset clears every input after a successful send.
	Reset()
}

// FormInput is the normalized snapshot of one submission attempt.
type FormInput struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required"`
	Message string `json:"message" validate:"required,utf16min=10"`
	Phone   string `json:"phone"`
}

// Extract reads f and trims every value.  An absent phone input yields "".
func Extract(f Fields) FormInput {
	in := FormInput{
		Name:    strings.TrimSpace(f.Text()),
		Email:   strings.TrimSpace(f.Email()),
		Message: strings.TrimSpace(f.Message()),
	}
	if phone, ok := f.Phone(); ok {
		in.Phone = strings.TrimSpace(phone)
	}
	return in
}
