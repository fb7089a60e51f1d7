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

// NewTenantsCommand creates the tenants command group
func NewTenantsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Manage tenants",
		Long:  "Retrieve, create, and delete FusionAuth tenants",
	}

	cmd.AddCommand(newTenantsListCommand())
	cmd.AddCommand(newTenantsGetCommand())
	cmd.AddCommand(newTenantsCreateCommand())
	cmd.AddCommand(newTenantsDeleteCommand())

	return cmd
}

func newTenantsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Long:  "List all tenants",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Tenants().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if len(result.Tenants) == 0 {
					fmt.Println("No tenants found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Issuer")

				for _, tenant := range result.Tenants {
					_ = table.Append(tenant.ID, tenant.Name, tenant.Issuer)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTenantsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TENANT_ID",
		Short: "Get a tenant",
		Long:  "Retrieve a tenant by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Tenants().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get tenant: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result.Tenant)
			case OutputFormatYAML:
				return renderYAML(result.Tenant)
			default:
				tenant := result.Tenant
				if tenant == nil {
					return ErrInvalidOutputData
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", tenant.ID)
				_ = table.Append("Name", tenant.Name)
				_ = table.Append("Issuer", tenant.Issuer)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newTenantsCreateCommand() *cobra.Command {
	var (
		name   string
		issuer string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tenant",
		Long:  "Create a new FusionAuth tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			result, err := client.Tenants().Create(context.Background(), "", &fusionauth.TenantRequest{
				Tenant: &fusionauth.Tenant{
					Name:   name,
					Issuer: issuer,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}

			fmt.Printf("Successfully created tenant '%s' with id %s\n", name, result.Tenant.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "tenant name (required)")
	cmd.Flags().StringVar(&issuer, "issuer", "", "JWT issuer for the tenant")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTenantsDeleteCommand() *cobra.Command {
	var (
		async bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "delete TENANT_ID",
		Short: "Delete a tenant",
		Long:  "Delete a tenant and everything that belongs to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete tenant '%s'? (y/N): ", args[0])

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

			if err := client.Tenants().Delete(context.Background(), args[0], async); err != nil {
				return fmt.Errorf("failed to delete tenant: %w", err)
			}

			fmt.Printf("Successfully deleted tenant '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&async, "async", false, "delete asynchronously")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
