package main

import (
	"context"
	"fmt"
	"net/http"

	"pilot-server/internal/application/client"
	"pilot-server/internal/application/domain"

	"github.com/spf13/cobra"
)

type contactOptions struct {
	server  string
	pageURL string
	source  string
	form    client.ContactForm
}

func newContactCmd() *cobra.Command {
	opts := &contactOptions{}
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runContact(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", _defaultServer, "base URL of the intake server")
	flags.StringVar(&opts.pageURL, "page-url", "", "page the message is sent from")
	flags.StringVar(&opts.source, "source", "pilotctl", "what opened the contact panel")
	flags.StringVar(&opts.form.Name, "name", "", "sender name")
	flags.StringVar(&opts.form.Email, "email", "", "sender email")
	flags.StringVar(&opts.form.Message, "message", "", "message body")
	return cmd
}

func runContact(cmd *cobra.Command, opts *contactOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), _requestTimeout)
	defer cancel()

	contact := client.NewContactClient(opts.server, &http.Client{Timeout: _requestTimeout})
	flow := client.NewContactFlow(contact, domain.NewPanelSession(), opts.pageURL)
	flow.Open(opts.source)
	flow.Update(func(form *client.ContactForm) {
		*form = opts.form
	})

	if err := flow.Submit(ctx); err != nil {
		return fmt.Errorf("%s: %w", flow.Err(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "message sent")
	return nil
}
