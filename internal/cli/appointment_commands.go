package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/views"
)

func AppointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "List your visit appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _ := cmd.Flags().GetString("tab")

			page := pages.NewTenantAppointments(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			views.AppointmentList(os.Stdout, page.Tab(tab))
			return nil
		},
	}

	cmd.Flags().String("tab", "all", "all, pending, confirmed or cancelled")
	cmd.AddCommand(
		decideAppointmentCmd(app, "accept", domain.StatusConfirmed),
		decideAppointmentCmd(app, "reject", domain.StatusCancelled),
		receiptCmd(app),
	)
	return cmd
}

// decideAppointmentCmd drives the owner's confirm/reject action through the
// dashboard page, which reloads in full afterwards.
func decideAppointmentCmd(app *App, verb string, status domain.AppointmentStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <id>",
		Short: verb + " a visit request (owners)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid appointment id %q", args[0])
			}

			page := pages.NewOwnerDashboard(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}
			if err := page.UpdateAppointmentStatus(cmd.Context(), id, status); err != nil {
				return err
			}

			fmt.Printf("Appointment %d %sed.\n", id, verb)
			return nil
		},
	}
}

func receiptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <id>",
		Short: "Download the visit receipt PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid appointment id %q", args[0])
			}

			page := pages.NewTenantAppointments(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			path, err := page.DownloadReceipt(cmd.Context(), id, app.Config.API.DownloadDir)
			if err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", path)
			return nil
		},
	}
}

func BookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book <listingId>",
		Short: "Book a visit appointment for a listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid listing id %q", args[0])
			}
			date, _ := cmd.Flags().GetString("date")
			clock, _ := cmd.Flags().GetString("time")

			page := pages.NewBookAppointment(app.Client, app.Session, listingID)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			appointment, err := page.Submit(cmd.Context(), date, clock)
			if err != nil {
				return err
			}

			fmt.Println("Appointment booked successfully!")
			views.AppointmentCard(os.Stdout, *appointment)
			return nil
		},
	}

	cmd.Flags().String("date", "", "Visit date (yyyy-MM-dd)")
	cmd.Flags().String("time", "", "Visit time (HH:mm)")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("time")

	return cmd
}
