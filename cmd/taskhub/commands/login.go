package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/taskhub-io/taskhub-client/pkg/validate"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to TaskHub",
		Long:  "Authenticate with a TaskHub API endpoint and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Email: ")
				email, _ = reader.ReadString('\n')
				email = strings.TrimSpace(email)
			}

			if email == "" {
				return ErrEmailRequired
			}

			if password == "" {
				fmt.Print("Password: ")

				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}

				password = string(bytePassword)

				fmt.Println()
			}

			if errs := validate.SignIn(validate.SignInForm{Email: email, Password: password}); len(errs) > 0 {
				return printValidationErrors(errs)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Auth().Signin(ctx, email, password)
			if err != nil {
				return fmt.Errorf("failed to sign in: %w", err)
			}

			err = persistToken(resp.Token)
			if err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}

			fmt.Printf("Successfully logged in as %s\n", resp.Email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from TaskHub",
		Long:  "Invalidate the current session and clear the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// Best effort server-side signout; the local token is cleared
			// regardless of the outcome.
			if effectiveToken() != "" {
				client, err := CreateClient(ctx)
				if err == nil {
					_, _ = client.Auth().Signout(ctx)
				}
			}

			err := persistToken("")
			if err != nil {
				return fmt.Errorf("failed to clear session token: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
