package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stayease/stayease/internal/api"
	"github.com/stayease/stayease/internal/domain"
)

func RegisterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a StayEase account",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")
			role, _ := cmd.Flags().GetString("role")

			err := app.Client.Register(cmd.Context(), api.RegisterRequest{
				FullName: name,
				Email:    email,
				Password: password,
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Println("Account created successfully! Please sign in.")
			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password")
	cmd.Flags().String("role", "user", "Account role: user or owner")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func LoginCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session cookie",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			result, err := app.Client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			// The cookie is already in the jar; the store only needs the
			// identity fields from the login response.
			app.Session.Login(domain.User{
				ID:       result.UserID,
				FullName: result.FullName,
				Email:    email,
				Role:     result.Role,
			})
			fmt.Printf("Signed in as %s (%s)\n", result.FullName, result.Role)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func LogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func WhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireUser()
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> role=%s id=%d\n", user.FullName, user.Email, user.Role, user.ID)
			return nil
		},
	}
}
