// internal/console/form.go
//
// Folio – Contact workflow: terminal front-end.
//
// Context
//   The same contact.Controller that runs in the browser can run from a shell.
//   Form plays the part of the page's inputs; Surface prints what the page
//   would show.  Drafts may be kept in YAML:
//
//     name: Jo
//     email: j@x.com
//     phone: "+1 555 0100"
//     message: |
//       Hello there!
//
//------------------------------------------------------------------------------

package console

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Draft is the YAML shape of a message.  A nil Phone means "no phone input".
type Draft struct {
	Name    string  `yaml:"name"`
	Email   string  `yaml:"email"`
	Phone   *string `yaml:"phone"`
	Message string  `yaml:"message"`
}

// LoadDraft reads a YAML draft from path.
func LoadDraft(path string) (Draft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Draft{}, fmt.Errorf("read draft %s: %w", path, err)
	}
	var d Draft
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Draft{}, fmt.Errorf("parse draft %s: %w", path, err)
	}
	return d, nil
}

// Merge overlays non-empty values from o onto d.
func (d Draft) Merge(o Draft) Draft {
	if o.Name != "" {
		d.Name = o.Name
	}
	if o.Email != "" {
		d.Email = o.Email
	}
	if o.Message != "" {
		d.Message = o.Message
	}
	if o.Phone != nil {
		d.Phone = o.Phone
	}
	return d
}

// Form is an in-memory contact.Fields holding one Draft.
type Form struct{ d Draft }

// NewForm returns a Form pre-filled with d.
func NewForm(d Draft) *Form { return &Form{d: d} }

func (f *Form) Text() string    { return f.d.Name }
func (f *Form) Email() string   { return f.d.Email }
func (f *Form) Message() string { return f.d.Message }

func (f *Form) Phone() (string, bool) {
	if f.d.Phone == nil {
		return "", false
	}
	return *f.d.Phone, true
}

// Reset empties every field but keeps the phone input present.
func (f *Form) Reset() {
	hasPhone := f.d.Phone != nil
	f.d = Draft{}
	if hasPhone {
		empty := ""
		f.d.Phone = &empty
	}
}

// Draft returns the current values.
func (f *Form) Draft() Draft { return f.d }
