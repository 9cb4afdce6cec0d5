package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/pages"
	"github.com/stayease/stayease/internal/views"
)

func NotificationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Your notification inbox (owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotifications(app, cmd)
			if err != nil {
				return err
			}

			if unread := page.UnreadCount(); unread > 0 {
				fmt.Printf("You have %d unread notification(s)\n", unread)
			} else {
				fmt.Println("All caught up!")
			}
			views.NotificationList(os.Stdout, page.Notifications())
			return nil
		},
	}

	cmd.AddCommand(
		markReadCmd(app),
		markAllReadCmd(app),
		deleteNotificationCmd(app),
		sendNotificationCmd(app),
	)
	return cmd
}

func loadNotifications(app *App, cmd *cobra.Command) (*pages.Notifications, error) {
	page := pages.NewNotifications(app.Client, app.Session)
	if err := page.Load(cmd.Context()); err != nil {
		return nil, err
	}
	if err := pageError(page); err != nil {
		return nil, err
	}
	return page, nil
}

func markReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}

			page, err := loadNotifications(app, cmd)
			if err != nil {
				return err
			}
			defer page.Close()

			if err := page.MarkRead(cmd.Context(), id); err != nil {
				return err
			}
			views.NotificationList(os.Stdout, page.Notifications())
			return nil
		},
	}
}

func markAllReadCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := loadNotifications(app, cmd)
			if err != nil {
				return err
			}
			defer page.Close()

			if err := page.MarkAllRead(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("All caught up!")
			return nil
		},
	}
}

func deleteNotificationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid notification id %q", args[0])
			}

			page, err := loadNotifications(app, cmd)
			if err != nil {
				return err
			}
			defer page.Close()

			if err := page.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Notification deleted.")
			return nil
		},
	}
}

func sendNotificationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send <userId> <message...>",
		Short: "Send an in-app notification to a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			message := strings.Join(args[1:], " ")

			if err := app.Client.SendNotification(cmd.Context(), userID, message); err != nil {
				return err
			}
			fmt.Println("Notification sent.")
			return nil
		},
	}
}
