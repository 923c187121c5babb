// internal/contact/validate.go
//
// Folio – Contact workflow: client-side validation.
//
// Context
//   Two rules, checked in order, first failure wins:
//
//     1. name, email, and message are present   → ReasonMissingField
//     2. message is at least ten characters     → ReasonMessageTooShort
//
//   The rules live as go-playground/validator tags on FormInput.  The
//   validator reports every failing field, so Validate scans for the
//   `required` tag first to keep the ordering stable when both rules fail.
//
// Notes
//   • Phone carries no rule.
//   • Lengths count UTF-16 code units, like a JavaScript string's length,
//     so "😀😀😀😀😀" is ten long.
//
//------------------------------------------------------------------------------

package contact

import (
	"errors"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Reason classifies a rejected input.
type Reason int

const (
	ReasonMissingField Reason = iota + 1
	ReasonMessageTooShort
)

// MinMessageLength mirrors the `utf16min` tag on FormInput.Message.
const MinMessageLength = 10

var reasonText = map[Reason]string{
	ReasonMissingField:    "Please fill in all required fields",
	ReasonMessageTooShort: "Message must be at least 10 characters long",
}

func (r Reason) String() string {
	switch r {
	case ReasonMissingField:
		return "missing required field"
	case ReasonMessageTooShort:
		return "message too short"
	default:
		return "unknown"
	}
}

// Rejection is a local, user-correctable validation failure.  It is shown as
// feedback and never logged as an error.
type Rejection struct {
	Reason Reason
	Text   string // user-facing message
}

func (r *Rejection) Error() string { return "contact input rejected: " + r.Reason.String() }

func reject(r Reason) *Rejection { return &Rejection{Reason: r, Text: reasonText[r]} }

// IsRejection reports whether err came from Validate.
func IsRejection(err error) bool {
	var rj *Rejection
	return errors.As(err, &rj)
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("utf16min", utf16Min); err != nil {
		panic(err)
	}
	return v
}

// utf16Min passes when the field is at least param UTF-16 units long.
func utf16Min(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf16Len(fl.Field().String()) >= n
}

func utf16Len(s string) int { return len(utf16.Encode([]rune(s))) }

// Validate returns nil when in may be sent, or a *Rejection.
func Validate(in FormInput) error {
	err := structValidator.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError only fires for non-struct input.
		return err
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return reject(ReasonMissingField)
		}
	}
	for _, fe := range fieldErrs {
		if fe.Field() == "Message" && fe.Tag() == "utf16min" {
			return reject(ReasonMessageTooShort)
		}
	}
	return reject(ReasonMissingField)
}
