package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewHealthCommand creates the health command.
func NewHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		Long:  "Query the API health endpoint and report its status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			health, err := client.CheckHealth(ctx)
			if err != nil {
				return fmt.Errorf("failed to check health: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(health)
			case OutputFormatYAML:
				return StandardYAMLRenderer(health)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("Status", health.Status)

				if health.Version != "" {
					_ = table.Append("Version", health.Version)
				}

				_ = table.Render()

				return nil
			}
		},
	}
}
