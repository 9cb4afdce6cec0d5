package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/views"
)

func ListingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse and filter available properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			location, _ := cmd.Flags().GetString("location")
			availability, _ := cmd.Flags().GetString("availability")
			floor, _ := cmd.Flags().GetInt("floor")

			page := pages.NewListingsBrowse(app.Client, app.Session)
			defer page.Close()

			var err error
			if location == "" && availability == "" && !cmd.Flags().Changed("floor") {
				err = page.Load(cmd.Context())
			} else {
				filter := api.ListingFilter{Location: location}
				if availability != "" && availability != "all" {
					filter.AvailabilityStatus = domain.Availability(availability)
				}
				if cmd.Flags().Changed("floor") {
					filter.FloorNumber = &floor
				}
				err = page.Filter(cmd.Context(), filter)
			}
			if err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			views.ListingTable(os.Stdout, page.Listings())
			return nil
		},
	}

	cmd.Flags().String("location", "", "Location substring")
	cmd.Flags().String("availability", "", "available, unavailable or all")
	cmd.Flags().Int("floor", 0, "Floor number")

	cmd.AddCommand(myListingsCmd(app), createListingCmd(app))
	return cmd
}

func myListingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "Show your own portfolio (owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewOwnerListings(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			views.ListingTable(os.Stdout, page.Listings())
			return nil
		},
	}
}

func createListingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing (owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			location, _ := cmd.Flags().GetString("location")
			floor, _ := cmd.Flags().GetInt("floor")
			image, _ := cmd.Flags().GetString("image")
			availability, _ := cmd.Flags().GetString("availability")

			page := pages.NewOwnerListings(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			err := page.Create(cmd.Context(), api.CreateListingRequest{
				Title:              title,
				Description:        description,
				Location:           location,
				FloorNumber:        floor,
				ImageURL:           image,
				AvailabilityStatus: domain.Availability(availability),
			})
			if err != nil {
				return err
			}

			views.ListingTable(os.Stdout, page.Listings())
			return nil
		},
	}

	cmd.Flags().String("title", "", "Listing title")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("location", "", "Location")
	cmd.Flags().Int("floor", 0, "Floor number")
	cmd.Flags().String("image", "", "Image URL")
	cmd.Flags().String("availability", "available", "available or unavailable")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("location")

	return cmd
}
