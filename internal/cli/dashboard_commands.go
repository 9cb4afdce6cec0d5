package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/views"
)

// DashboardCmd picks the tenant or owner overview based on the signed-in role,
// the same way the home route forwards to the matching dashboard.
func DashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Your overview, picked by role",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}

			if user.Role == domain.RoleOwner {
				return ownerDashboard(app, cmd)
			}
			return tenantDashboard(app, cmd)
		},
	}
}

func tenantDashboard(app *App, cmd *cobra.Command) error {
	page := pages.NewTenantDashboard(app.Client, app.Session)
	defer page.Close()

	if err := page.Load(cmd.Context()); err != nil {
		return err
	}
	if err := pageError(page); err != nil {
		return err
	}

	fmt.Printf("Upcoming visits: %d    Pending requests: %d    Unread: %d\n\n",
		len(page.Confirmed()), len(page.Pending()), page.UnreadCount())

	fmt.Println("Appointments:")
	views.AppointmentList(os.Stdout, page.Appointments())
	fmt.Println()

	fmt.Println("Your reviews:")
	views.ReviewList(os.Stdout, page.Reviews())
	return nil
}

func ownerDashboard(app *App, cmd *cobra.Command) error {
	page := pages.NewOwnerDashboard(app.Client, app.Session)
	defer page.Close()

	if err := page.Load(cmd.Context()); err != nil {
		return err
	}
	if err := pageError(page); err != nil {
		return err
	}

	fmt.Printf("Listings: %d    Pending requests: %d    Confirmed visits: %d\n",
		len(page.Listings()), len(page.Pending()), len(page.Confirmed()))
	fmt.Printf("Reviews: %d (average %.1f)    Unread: %d\n\n",
		len(page.Reviews()), page.AverageRating(), page.UnreadCount())

	fmt.Println("Your listings:")
	views.ListingTable(os.Stdout, page.Listings())
	fmt.Println()

	fmt.Println("Visit requests:")
	views.AppointmentList(os.Stdout, page.Appointments())
	return nil
}

// StatsCmd reads the server-computed dashboard counters directly.
func StatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Server-side dashboard counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}

			var stats *domain.DashboardStats
			if user.Role == domain.RoleOwner {
				stats, err = app.Client.OwnerDashboard(cmd.Context(), user.ID)
			} else {
				stats, err = app.Client.UserDashboard(cmd.Context(), user.ID)
			}
			if err != nil {
				return err
			}

			views.DashboardStats(os.Stdout, *stats)
			return nil
		},
	}
}
