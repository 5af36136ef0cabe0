package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"jarcafe/internal/client"
	"os"
	"os/signal"
	"syscall"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func newRootCmd() *cobra.Command {
	var form client.Form
	endpoint := os.Getenv("RESERVATION_ENDPOINT")

	root := &cobra.Command{
		Use:           "reserve",
		Short:         "Submit a table reservation to The Jar Café",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			out := client.NewSubmitter(endpoint).Submit(ctx, form)
			fmt.Fprintln(cmd.OutOrStdout(), out.Message())
			if out.Err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", out.Err)
			}
			if out.Kind != client.OutcomeReserved {
				return fmt.Errorf("reservation not placed")
			}
			return nil
		},
	}

	f := root.Flags()
	f.StringVar(&form.Name, "name", "", "guest name (required)")
	f.StringVar(&form.Email, "email", "", "guest email (required)")
	f.StringVar(&form.Phone, "phone", "", "guest phone (required)")
	f.StringVar(&form.Person, "person", "1", "number of guests")
	f.StringVar(&form.ReservationDate, "date", "", "reservation date, e.g. 2025-06-01 (required)")
	f.StringVar(&form.Time, "time", "", "reservation time, e.g. 19:00 (required)")
	f.StringVar(&form.Message, "message", "", "optional note for the café")
	f.StringVar(&endpoint, "endpoint", endpoint, "reservation API URL (default "+client.DefaultEndpoint+")")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reserve %s (commit=%s)\n", Version, CommitSHA)
		},
	})
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
