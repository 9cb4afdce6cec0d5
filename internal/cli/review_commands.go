package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/views"
)

func ReviewsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Your reviews and the visits you can still review",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := pages.NewTenantReviews(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}

			if eligible := page.Eligible(); len(eligible) > 0 {
				fmt.Println("Properties you can review:")
				for _, apt := range eligible {
					fmt.Printf("  listing %d: %s (%s)\n",
						apt.Listing.ID, apt.Listing.Title, apt.Listing.Location)
				}
				fmt.Println()
			}

			fmt.Printf("Your reviews (%d):\n", len(page.Reviews()))
			views.ReviewList(os.Stdout, page.Reviews())
			return nil
		},
	}

	cmd.AddCommand(addReviewCmd(app), updateReviewCmd(app), deleteReviewCmd(app))
	return cmd
}

func addReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <listingId>",
		Short: "Review a listing you visited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listingID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid listing id %q", args[0])
			}
			rating, _ := cmd.Flags().GetInt("rating")
			comment, _ := cmd.Flags().GetString("comment")

			page := pages.NewTenantReviews(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}
			if err := page.Submit(cmd.Context(), listingID, rating, comment); err != nil {
				return err
			}

			fmt.Println("Review submitted.")
			return nil
		},
	}

	cmd.Flags().Int("rating", 5, "Rating from 1 to 5")
	cmd.Flags().String("comment", "", "Review text")
	return cmd
}

func updateReviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id %q", args[0])
			}
			rating, _ := cmd.Flags().GetInt("rating")
			comment, _ := cmd.Flags().GetString("comment")

			page := pages.NewTenantReviews(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}
			if err := page.Update(cmd.Context(), id, rating, comment); err != nil {
				return err
			}

			fmt.Println("Review updated.")
			return nil
		},
	}

	cmd.Flags().Int("rating", 5, "Rating from 1 to 5")
	cmd.Flags().String("comment", "", "Review text")
	return cmd
}

func deleteReviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id %q", args[0])
			}

			page := pages.NewTenantReviews(app.Client, app.Session)
			defer page.Close()

			if err := page.Load(cmd.Context()); err != nil {
				return err
			}
			if err := pageError(page); err != nil {
				return err
			}
			if err := page.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Println("Review deleted.")
			return nil
		},
	}
}
