package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/cli"
)

func main() {
	app, err := cli.NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:           "stayease",
		Short:         "StayEase property rental client",
		Long:          "Browse listings, book visits, review properties and manage your portfolio from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		cli.RegisterCmd(app),
		cli.LoginCmd(app),
		cli.LogoutCmd(app),
		cli.WhoamiCmd(app),
		cli.DashboardCmd(app),
		cli.StatsCmd(app),
		cli.ListingsCmd(app),
		cli.AppointmentsCmd(app),
		cli.BookCmd(app),
		cli.ReviewsCmd(app),
		cli.NotificationsCmd(app),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
