//go:build js && wasm

// cmd/wasm/main.go
//
// Folio – browser entry point.
//
// Build
// -----
//
//	GOOS=js GOARCH=wasm go build -o public/folio.wasm ./cmd/wasm
//
// The page loads wasm_exec.js and folio.wasm.  main binds the contact form
// and then blocks, because the Go runtime must stay alive for the submit
// listener to run.  The browser has no conf/ tree, so the compiled-in
// contact defaults apply.
package main

import (
	"errors"

	"github.com/yanizio/folio/internal/contact"
	"github.com/yanizio/folio/internal/contact/dom"
	"github.com/yanizio/folio/internal/logger"
)

const formSelector = ".contact-form"

func main() {
	log := logger.Console()
	log.Info("Welcome to my Portfolio!  Feel free to reach out!")

	client := contact.NewClient(contact.DefaultEndpoint, 0, nil)
	if _, err := dom.Bind(formSelector, client, log, contact.DefaultOptions()); err != nil {
		// Pages without a contact form are fine.
		if errors.Is(err, dom.ErrNoForm) {
			log.Debugw("no contact form on page", "selector", formSelector)
		} else {
			log.Errorw("contact form bind failed", "err", err)
		}
	}

	select {}
}
