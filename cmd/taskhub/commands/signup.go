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

// NewSignupCommand creates the signup command.
func NewSignupCommand() *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a TaskHub account",
		Long:  "Register a new account and store the issued session token",
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

			fmt.Print("Confirm password: ")

			byteConfirm, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			confirm := string(byteConfirm)

			fmt.Println()

			form := validate.SignUpForm{
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
				Name:            name,
			}
			if errs := validate.SignUp(form); len(errs) > 0 {
				return printValidationErrors(errs)
			}

			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Auth().Signup(ctx, email, password, name)
			if err != nil {
				return fmt.Errorf("failed to sign up: %w", err)
			}

			err = persistToken(resp.Token)
			if err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}

			fmt.Printf("Successfully created account %s\n", resp.Email)

			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (optional)")

	return cmd
}
