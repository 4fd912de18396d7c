package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted CLI configuration",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the configuration",
		Long:  "Show the persisted configuration; the session token is masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			masked := *config
			if masked.Token != "" {
				masked.Token = "***"
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(masked)
			case OutputFormatYAML:
				return StandardYAMLRenderer(masked)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				_ = table.Append("api", masked.API)
				_ = table.Append("token", masked.Token)
				_ = table.Append("output", masked.Output)

				_ = table.Render()

				return nil
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value (keys: api, token, output)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			switch key {
			case "api":
				config.API = value
			case "token":
				config.Token = value
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value (keys: api, token, output)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			switch key {
			case "api":
				config.API = ""
			case "token":
				config.Token = ""
			case "output":
				config.Output = ""
			default:
				return fmt.Errorf("%w: %s", ErrConfigKeyUnknown, key)
			}

			err = saveCLIConfig(config)
			if err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", key)

			return nil
		},
	}
}
