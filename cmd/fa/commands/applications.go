package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewApplicationsCommand creates the applications command group
func NewApplicationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Manage applications",
		Long:    "Retrieve, create, and delete FusionAuth applications",
	}

	cmd.AddCommand(newApplicationsListCommand())
	cmd.AddCommand(newApplicationsGetCommand())
	cmd.AddCommand(newApplicationsCreateCommand())
	cmd.AddCommand(newApplicationsDeleteCommand())

	return cmd
}

func newApplicationsListCommand() *cobra.Command {
	var inactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long:  "List all active applications, or inactive ones with --inactive",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Applications().List(context.Background(), inactive)
			if err != nil {
				return fmt.Errorf("failed to list applications: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if len(result.Applications) == 0 {
					fmt.Println("No applications found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Active", "Roles")

				for _, app := range result.Applications {
					_ = table.Append(app.ID, app.Name, fmt.Sprintf("%t", app.Active), fmt.Sprintf("%d", len(app.Roles)))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&inactive, "inactive", false, "list inactive applications instead of active ones")

	return cmd
}

func newApplicationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get APPLICATION_ID",
		Short: "Get an application",
		Long:  "Retrieve an application by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Applications().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get application: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result.Application)
			case OutputFormatYAML:
				return renderYAML(result.Application)
			default:
				app := result.Application
				if app == nil {
					return ErrInvalidOutputData
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", app.ID)
				_ = table.Append("Name", app.Name)
				_ = table.Append("Active", fmt.Sprintf("%t", app.Active))
				_ = table.Append("Tenant", app.TenantID)

				for _, role := range app.Roles {
					_ = table.Append("Role", role.Name)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newApplicationsCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an application",
		Long:  "Create a new FusionAuth application",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Applications().Create(context.Background(), "", &fusionauth.ApplicationRequest{
				Application: &fusionauth.Application{
					Name: name,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to create application: %w", err)
			}

			fmt.Printf("Successfully created application '%s' with id %s\n", name, result.Application.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "application name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newApplicationsDeleteCommand() *cobra.Command {
	var (
		hardDelete bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "delete APPLICATION_ID",
		Short: "Delete an application",
		Long:  "Delete an application, permanently with --hard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete application '%s'? (y/N): ", args[0])

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")

					return nil
				}
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			if err := client.Applications().Delete(context.Background(), args[0], hardDelete); err != nil {
				return fmt.Errorf("failed to delete application: %w", err)
			}

			fmt.Printf("Successfully deleted application '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&hardDelete, "hard", false, "permanently delete instead of deactivating")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
