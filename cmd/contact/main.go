// cmd/contact/main.go
//
// Folio – contact form from the terminal.
//
// Usage
// -----
//
//	contact send --name Jo --email j@x.com --message "Hello there!"
//	contact send --file draft.yaml --phone "+1 555 0100"
//
// Flags override values from --file.  The endpoint, subject, and timeout
// come from configuration (conf/global.yaml, FOLIO_ env) unless --endpoint
// is given.  --metrics-file writes the run's counters for the node_exporter
// textfile collector.  The exit status is 0 only when the intake API
// accepted the message.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/yanizio/folio/internal/config"
	"github.com/yanizio/folio/internal/console"
	"github.com/yanizio/folio/internal/contact"
	"github.com/yanizio/folio/internal/logger"
	"github.com/yanizio/folio/internal/metrics"
)

func main() {
	app := &cli.Command{
		Name:     "contact",
		Usage:    "send a message through the portfolio contact intake",
		Commands: []*cli.Command{newSendCommand()},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newSendCommand() *cli.Command {
	return &cli.Command{
		Name:  "send",
		Usage: "validate and submit one message",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "your name"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "reply address"},
			&cli.StringFlag{Name: "phone", Aliases: []string{"p"}, Usage: "optional phone number"},
			&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "message body, at least 10 characters"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "YAML draft with name, email, phone, and message"},
			&cli.StringFlag{Name: "endpoint", Usage: "override contact.endpoint"},
			&cli.StringFlag{Name: "metrics-file", Usage: "write Prometheus textfile metrics here after sending"},
		},
		Action: runSend,
	}
}

func runSend(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logOut, err := logger.New(cfg.Paths.Root, false)
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer func() { _ = logOut.Sync() }()

	draft, err := draftFromFlags(cmd)
	if err != nil {
		return err
	}

	endpoint := cfg.Contact.Endpoint
	if e := cmd.String("endpoint"); e != "" {
		endpoint = e
	}

	opts := cfg.ContactOptions()
	opts.Observer = metrics.ContactObserver{}

	form := console.NewForm(draft)
	surface := console.NewSurface(os.Stdout, "Send Message")
	client := contact.NewClient(endpoint, cfg.Contact.Timeout, nil)
	ctrl := contact.NewController(form, surface, client, logOut, opts)

	out := ctrl.Submit(ctx)
	logOut.Infow("contact send finished", "outcome", out.String(), "endpoint", endpoint)

	if path := cmd.String("metrics-file"); path != "" {
		// node_exporter textfile collector format.
		if err := prometheus.WriteToTextfile(path, metrics.ContactRegistry); err != nil {
			logOut.Warnw("metrics textfile", "file", path, "err", err)
		}
	}
	if out != contact.OutcomeSent {
		return cli.Exit("", exitCode(out))
	}
	return nil
}

// draftFromFlags loads --file, then overlays individual flags.
func draftFromFlags(cmd *cli.Command) (console.Draft, error) {
	var d console.Draft
	if path := cmd.String("file"); path != "" {
		loaded, err := console.LoadDraft(path)
		if err != nil {
			return console.Draft{}, err
		}
		d = loaded
	}

	flags := console.Draft{
		Name:    cmd.String("name"),
		Email:   cmd.String("email"),
		Message: cmd.String("message"),
	}
	if cmd.IsSet("phone") {
		phone := cmd.String("phone")
		flags.Phone = &phone
	}
	return d.Merge(flags), nil
}

func exitCode(o contact.Outcome) int {
	switch o {
	case contact.OutcomeRejected:
		return 2
	case contact.OutcomeDeclined:
		return 3
	case contact.OutcomeFault:
		return 4
	default:
		zap.S().Warnw("unexpected outcome", "outcome", o.String())
		return 1
	}
}
