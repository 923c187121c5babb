// internal/contact/validate_test.go
//
// Unit-tests for Extract and Validate: trimming, rule order, and message
// length in UTF-16 units.

package contact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TrimsAndDefaultsPhone(t *testing.T) {
	f := &fakeFields{name: "  Jo ", email: "\tj@x.com\n", message: "  Hello there!  "}

	got := Extract(f)

	assert.Equal(t, FormInput{Name: "Jo", Email: "j@x.com", Message: "Hello there!", Phone: ""}, got)
}

func TestExtract_ReadsPresentPhone(t *testing.T) {
	f := &fakeFields{phone: " +1 555 0100 ", hasPhone: true}

	assert.Equal(t, "+1 555 0100", Extract(f).Phone)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		in     FormInput
		reason Reason
		text   string
	}{
		{"valid", FormInput{Name: "Jo", Email: "j@x.com", Message: "Hello there!"}, 0, ""},
		{"exactly ten", FormInput{Name: "Jo", Email: "j@x.com", Message: "0123456789"}, 0, ""},
		{"missing name", FormInput{Email: "j@x.com", Message: "Hello there!"}, ReasonMissingField, "Please fill in all required fields"},
		{"missing email", FormInput{Name: "Jo", Message: "Hello there!"}, ReasonMissingField, "Please fill in all required fields"},
		{"missing message", FormInput{Name: "Jo", Email: "j@x.com"}, ReasonMissingField, "Please fill in all required fields"},
		{"short message", FormInput{Name: "Jo", Email: "j@x.com", Message: "short"}, ReasonMessageTooShort, "Message must be at least 10 characters long"},
		{"missing wins over short", FormInput{Email: "j@x.com", Message: "short"}, ReasonMissingField, "Please fill in all required fields"},
		{"phone unconstrained", FormInput{Name: "Jo", Email: "j@x.com", Message: "Hello there!", Phone: "x"}, 0, ""},
		{"utf-16 units not bytes", FormInput{Name: "Jo", Email: "j@x.com", Message: "ééééééééé"}, ReasonMessageTooShort, "Message must be at least 10 characters long"},
		{"surrogate pairs count twice", FormInput{Name: "Jo", Email: "j@x.com", Message: "😀😀😀😀😀"}, 0, ""},
		{"four emoji too short", FormInput{Name: "Jo", Email: "j@x.com", Message: "😀😀😀😀"}, ReasonMessageTooShort, "Message must be at least 10 characters long"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if tc.reason == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsRejection(err))

			var rj *Rejection
			require.True(t, errors.As(err, &rj))
			assert.Equal(t, tc.reason, rj.Reason)
			assert.Equal(t, tc.text, rj.Text)
		})
	}
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, utf16Len(""))
	assert.Equal(t, 5, utf16Len("hello"))
	assert.Equal(t, 2, utf16Len("é!"))
	assert.Equal(t, 2, utf16Len("😀"))
	assert.Equal(t, MinMessageLength, utf16Len("😀😀😀😀😀"))
}

func TestIsRejection_OtherErrors(t *testing.T) {
	assert.False(t, IsRejection(errors.New("boom")))
	assert.False(t, IsRejection(nil))
}
