package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configKeys are the keys the config command will read and write.
var configKeys = []string{"url", "api-key", "tenant", "output"}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persistent CLI configuration in ~/.fa/config.yml",
	}

	cmd.AddCommand(newConfigViewCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigViewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View configuration",
		Long:  "Display the effective CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := make(map[string]string, len(configKeys))
			for _, key := range configKeys {
				settings[key] = viper.GetString(key)
			}

			// Never print the API key in full.
			if key := settings["api-key"]; len(key) > 8 {
				settings["api-key"] = key[:4] + "..." + key[len(key)-4:]
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(settings)
			case OutputFormatYAML:
				return renderYAML(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range configKeys {
					_ = table.Append(key, settings[key])
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print a single configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isConfigKey(args[0]) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			fmt.Println(viper.GetString(args[0]))

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isConfigKey(args[0]) {
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, args[0])
			}

			viper.Set(args[0], args[1])

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func isConfigKey(key string) bool {
	for _, known := range configKeys {
		if key == known {
			return true
		}
	}

	return false
}

// saveConfig persists the current viper state to the config file.
func saveConfig() error {
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}

		cfgFile = filepath.Join(home, ".fa", "config.yml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
