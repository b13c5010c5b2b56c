package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"pilot-server/internal/application/client"
	"pilot-server/internal/application/domain"

	"github.com/spf13/cobra"
)

var ErrApplicationIncomplete = errors.New("application is incomplete")

type applyOptions struct {
	server  string
	pageURL string
	form    domain.Form
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{}
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Fill and submit a pilot application",
		Long: `Fill the application form from flags and submit it explicitly.

When required fields are missing nothing is sent and the missing-field
summary is printed instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.server, "server", _defaultServer, "base URL of the intake server")
	flags.StringVar(&opts.pageURL, "page-url", "", "page the application is attributed to, UTM parameters included")
	flags.StringVar(&opts.form.OrgName, "org-name", "", "organization name")
	flags.StringVar(&opts.form.OrgWebsite, "org-website", "", "organization website")
	flags.StringVar(&opts.form.Country, "country", "", "country")
	flags.StringVar(&opts.form.AnnualFundraisingVolumeBand, "annual-volume", "", "annual fundraising volume band")
	flags.StringVar(&opts.form.ContactName, "contact-name", "", "primary contact name")
	flags.StringVar(&opts.form.ContactEmail, "contact-email", "", "primary contact email")
	flags.StringVar(&opts.form.CurrentSystem, "current-system", "", "current donor system")
	flags.StringVar(&opts.form.CurrentSystemOther, "current-system-other", "", "current system when --current-system is Other")
	flags.StringVar(&opts.form.DonationsPerMonthBand, "donations-per-month", "", "gift transactions per month band")
	flags.StringVar(&opts.form.CrmChangeReason, "crm-change-reason", "", "what would make you change CRM")
	flags.StringVar(&opts.form.PilotNotes, "pilot-notes", "", "anything else about the pilot")
	return cmd
}

func runApply(cmd *cobra.Command, opts *applyOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), _requestTimeout)
	defer cancel()

	panels := domain.NewPanelSession()
	panels.OpenApplication()
	intake := client.NewIntakeClient(opts.server, &http.Client{Timeout: _requestTimeout})
	flow := client.NewApplicationFlow(intake, panels, opts.pageURL)

	flow.Edit(func(session *domain.FormSession) {
		form := opts.form
		session.Update(func(target *domain.Form) {
			*target = form
		})
		session.SetCurrentSystem(form.CurrentSystem)
		for range domain.Sections[1:] {
			session.Next()
		}
	})

	result, err := flow.Submit(ctx, domain.TriggerExplicit)
	if err != nil {
		return fmt.Errorf("%s: %w", flow.Err(), err)
	}

	switch result.Outcome {
	case domain.OutcomeBlocked:
		var summary string
		flow.Edit(func(session *domain.FormSession) {
			summary = session.MissingSummary()
		})
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
		return ErrApplicationIncomplete
	case domain.OutcomeSubmitted:
		fmt.Fprintln(cmd.OutOrStdout(), "application submitted")
		return nil
	default:
		return fmt.Errorf("application not sent: %s", result.Outcome)
	}
}
