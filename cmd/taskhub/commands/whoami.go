package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/taskhub-io/taskhub-client/pkg/taskapi"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		Long:  "Show the account the stored session token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			user, err := client.Auth().Me(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *taskapi.User) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(user)
	case OutputFormatYAML:
		return StandardYAMLRenderer(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", user.ID)
		_ = table.Append("Email", user.Email)

		if user.Name != "" {
			_ = table.Append("Name", user.Name)
		}

		if user.CreatedAt != "" {
			_ = table.Append("Created", user.CreatedAt)
		}

		_ = table.Render()

		return nil
	}
}

// NewRefreshCommand creates the refresh command.
func NewRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the session token",
		Long:  "Exchange the stored session token for a fresh one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateAuthenticatedClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Auth().Refresh(ctx)
			if err != nil {
				return fmt.Errorf("failed to refresh token: %w", err)
			}

			err = persistToken(resp.Token)
			if err != nil {
				return fmt.Errorf("failed to save session token: %w", err)
			}

			fmt.Println("Session token refreshed")

			return nil
		},
	}
}
