package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"pilot-server/cmd/config"
	"pilot-server/internal/infra/googleauth"

	"github.com/spf13/cobra"
)

var ErrMissingServiceAccount = errors.New("service account email and private key are required")

type signAssertionOptions struct {
	email          string
	privateKeyFile string
	issuedAt       int64
}

func newSignAssertionCmd() *cobra.Command {
	opts := &signAssertionOptions{}
	cmd := &cobra.Command{
		Use:   "sign-assertion",
		Short: "Sign a Google service-account assertion locally",
		Long: `Sign the JWT bearer assertion the Sheets backend would exchange for a
token. Values not given as flags come from GOOGLE_SERVICE_ACCOUNT_EMAIL and
GOOGLE_PRIVATE_KEY. Nothing is sent anywhere.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignAssertion(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.email, "email", "", "service account email")
	flags.StringVar(&opts.privateKeyFile, "private-key-file", "", "PEM file holding the service account key")
	flags.Int64Var(&opts.issuedAt, "issued-at", 0, "issue time as unix seconds, now when zero")
	return cmd
}

func runSignAssertion(cmd *cobra.Command, opts *signAssertionOptions) error {
	email := opts.email
	var rawKey string
	if opts.privateKeyFile != "" {
		content, err := os.ReadFile(opts.privateKeyFile)
		if err != nil {
			return fmt.Errorf("reading private key: %w", err)
		}
		rawKey = string(content)
	}

	if email == "" || rawKey == "" {
		google := config.LoadConfig().Google
		if email == "" {
			email = google.ServiceAccountEmail
		}
		if rawKey == "" {
			rawKey = google.PrivateKey
		}
	}
	if email == "" || rawKey == "" {
		return ErrMissingServiceAccount
	}

	key, err := googleauth.ParsePrivateKey(rawKey)
	if err != nil {
		return err
	}

	issuedAt := time.Now()
	if opts.issuedAt != 0 {
		issuedAt = time.Unix(opts.issuedAt, 0)
	}

	assertion, err := googleauth.SignAssertion(key, googleauth.NewAssertionClaims(email, issuedAt))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), assertion)
	return nil
}
