package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Display deployment status",
		Long:  "Display the status and version of the FusionAuth deployment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			status, err := client.System().Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(status)
			case OutputFormatYAML:
				return renderYAML(status)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				for key, value := range status {
					_ = table.Append(key, fmt.Sprintf("%v", value))
				}

				// Version needs an API key, so failures are not fatal here.
				if version, err := client.System().Version(ctx); err == nil {
					_ = table.Append("Version", version.Version)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
