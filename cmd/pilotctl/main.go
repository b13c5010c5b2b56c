package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

const (
	_defaultServer  = "http://localhost:3000"
	_requestTimeout = 30 * time.Second
)

func main() {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pilotctl",
		Short: "Operator tools for the pilot intake server",
		Long: `pilotctl drives the pilot intake server the way the public site does.

Available subcommands:
  apply          - Fill and submit a pilot application
  contact        - Send a contact message
  sign-assertion - Sign a Google service-account assertion locally`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newApplyCmd(),
		newContactCmd(),
		newSignAssertionCmd(),
	)
	return root
}
