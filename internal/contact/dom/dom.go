//go:build js && wasm

// internal/contact/dom/dom.go
//
// Folio – Contact workflow: browser binding.
//
// Context
//   Bind attaches a contact.Controller to the page's contact form.  The
//   binding is both sides of the form:
//
//     • contact.Fields  – reads input[type=text], input[type=email],
//                         textarea, and the optional input[type=tel].
//     • contact.Surface – drives the submit button and the feedback <div>,
//                         which is created on first use as the form's first
//                         child.
//
//   The submit listener calls preventDefault and runs Submit on a goroutine.
//   A js.Func callback must return before the event loop can resolve the
//   fetch promise that net/http waits on, so it never blocks.
//
// Notes
//   • Element lookups happen at Bind time; the markup is static.
//   • Release removes the listener and frees the callback.
//
//------------------------------------------------------------------------------

package dom

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/yanizio/folio/internal/contact"
)

const feedbackID = "form-message"

// ErrNoForm is returned when the selector matches nothing.
var ErrNoForm = errors.New("dom: contact form not found")

// Binding ties one form element to one Controller.
type Binding struct {
	doc      js.Value
	form     js.Value
	name     js.Value
	email    js.Value
	message  js.Value
	phone    js.Value // may be null
	button   js.Value
	feedback js.Value // created lazily

	ctrl     *contact.Controller
	onSubmit js.Func
}

// Bind finds the form matching selector and wires a Controller to it.
func Bind(selector string, sender contact.Sender, log *zap.SugaredLogger, opts contact.Options) (*Binding, error) {
	doc := js.Global().Get("document")
	form := doc.Call("querySelector", selector)
	if isMissing(form) {
		return nil, fmt.Errorf("%w: %s", ErrNoForm, selector)
	}

	b := &Binding{
		doc:     doc,
		form:    form,
		name:    form.Call("querySelector", `input[type="text"]`),
		email:   form.Call("querySelector", `input[type="email"]`),
		message: form.Call("querySelector", "textarea"),
		phone:   form.Call("querySelector", `input[type="tel"]`),
		button:  form.Call("querySelector", `button[type="submit"]`),
	}
	if err := b.checkRequired(selector); err != nil {
		return nil, err
	}

	b.ctrl = contact.NewController(b, b, sender, log, opts)
	b.onSubmit = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			args[0].Call("preventDefault")
		}
		go b.ctrl.Submit(context.Background())
		return nil
	})
	form.Call("addEventListener", "submit", b.onSubmit)

	log.Infow("contact form bound", "selector", selector, "phone", !isMissing(b.phone))
	return b, nil
}

// checkRequired names the first missing element, in document order.
func (b *Binding) checkRequired(selector string) error {
	required := []struct {
		what string
		el   js.Value
	}{
		{"text input", b.name},
		{"email input", b.email},
		{"textarea", b.message},
		{"submit button", b.button},
	}
	for _, r := range required {
		if isMissing(r.el) {
			return fmt.Errorf("dom: %s missing in %s", r.what, selector)
		}
	}
	return nil
}

// Controller exposes the bound workflow.
func (b *Binding) Controller() *contact.Controller { return b.ctrl }

// Release detaches the submit listener.
func (b *Binding) Release() {
	b.form.Call("removeEventListener", "submit", b.onSubmit)
	b.onSubmit.Release()
}

/*──────────────────────────── contact.Fields ──────────────────────────────*/

func (b *Binding) Text() string    { return b.name.Get("value").String() }
func (b *Binding) Email() string   { return b.email.Get("value").String() }
func (b *Binding) Message() string { return b.message.Get("value").String() }

func (b *Binding) Phone() (string, bool) {
	if isMissing(b.phone) {
		return "", false
	}
	return b.phone.Get("value").String(), true
}

func (b *Binding) Reset() { b.form.Call("reset") }

/*──────────────────────────── contact.Surface ─────────────────────────────*/

func (b *Binding) ButtonLabel() string { return b.button.Get("textContent").String() }

// Apply writes v to the button and the feedback element.
func (b *Binding) Apply(v contact.View) {
	b.button.Set("disabled", v.ButtonDisabled)
	b.button.Set("textContent", v.ButtonLabel)

	el := b.feedbackElement()
	style := el.Get("style")
	if !v.FeedbackVisible {
		style.Set("display", "none")
		return
	}
	el.Set("textContent", v.FeedbackText)
	el.Set("className", "form-message form-message--"+v.FeedbackKind.String())
	style.Set("display", "block")
	style.Set("backgroundColor", v.Style.Background)
	style.Set("color", v.Style.Color)
	style.Set("borderLeft", v.Style.BorderLeft)
}

// feedbackElement returns #form-message, inserting it on first use.
func (b *Binding) feedbackElement() js.Value {
	if !isMissing(b.feedback) {
		return b.feedback
	}
	el := b.doc.Call("getElementById", feedbackID)
	if isMissing(el) {
		el = b.doc.Call("createElement", "div")
		el.Set("id", feedbackID)
		el.Get("style").Set("cssText",
			"padding: 12px 16px; margin: 15px 0; border-radius: 6px; "+
				"text-align: center; font-weight: 500; transition: all 0.3s ease;")
		b.form.Call("insertAdjacentElement", "afterbegin", el)
	}
	b.feedback = el
	return el
}

func isMissing(v js.Value) bool { return v.IsUndefined() || v.IsNull() }
