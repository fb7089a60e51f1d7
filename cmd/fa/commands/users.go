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

// NewUsersCommand creates the users command group
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
		Long:  "Retrieve, create, search, and delete FusionAuth users",
	}

	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersSearchCommand())
	cmd.AddCommand(newUsersDeactivateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersGetCommand() *cobra.Command {
	var byEmail bool

	cmd := &cobra.Command{
		Use:   "get USER_ID_OR_EMAIL",
		Short: "Get a user",
		Long:  "Retrieve a user by id, or by email with --email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *fusionauth.UserResponse
			if byEmail {
				result, err = client.Users().GetByEmail(ctx, args[0])
			} else {
				result, err = client.Users().Get(ctx, args[0])
			}

			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return outputUser(result.User)
		},
	}

	cmd.Flags().BoolVar(&byEmail, "email", false, "look the user up by email instead of id")

	return cmd
}

func newUsersCreateCommand() *cobra.Command {
	var (
		email    string
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a new FusionAuth user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" && username == "" {
				return ErrLoginIDRequired
			}

			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := client.Users().Create(ctx, "", &fusionauth.UserRequest{
				User: &fusionauth.User{
					Email:    email,
					Username: username,
					Password: password,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("Successfully created user %s\n", result.User.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&username, "username", "", "user username")
	cmd.Flags().StringVar(&password, "password", "", "user password")

	return cmd
}

func newUsersSearchCommand() *cobra.Command {
	var (
		queryString string
		numResults  int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search users",
		Long:  "Search users with a full-text query string",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			results, err := client.Search().Users(ctx, &fusionauth.SearchRequest{
				Search: fusionauth.UserSearchCriteria{
					QueryString:     queryString,
					NumberOfResults: numResults,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to search users: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(results)
			case OutputFormatYAML:
				return renderYAML(results)
			default:
				if len(results.Users) == 0 {
					fmt.Println("No users found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Email", "Username", "Active")

				for _, user := range results.Users {
					_ = table.Append(user.ID, user.Email, user.Username, fmt.Sprintf("%t", user.Active))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Printf("\nTotal: %d\n", results.Total)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&queryString, "query", "q", "*", "query string")
	cmd.Flags().IntVarP(&numResults, "num-results", "n", 25, "maximum number of results")

	return cmd
}

func newUsersDeactivateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate USER_ID",
		Short: "Deactivate a user",
		Long:  "Deactivate a user without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			if err := client.Users().Deactivate(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to deactivate user: %w", err)
			}

			fmt.Printf("Successfully deactivated user '%s'\n", args[0])

			return nil
		},
	}
}

func newUsersDeleteCommand() *cobra.Command {
	var (
		hardDelete bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Long:  "Delete a user, permanently with --hard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete user '%s'? (y/N): ", args[0])

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

			if err := client.Users().Delete(context.Background(), args[0], hardDelete); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("Successfully deleted user '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVar(&hardDelete, "hard", false, "permanently delete instead of deactivating")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func outputUser(user *fusionauth.User) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(user)
	case OutputFormatYAML:
		return renderYAML(user)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", user.ID)
		_ = table.Append("Email", user.Email)
		_ = table.Append("Username", user.Username)
		_ = table.Append("Active", fmt.Sprintf("%t", user.Active))
		_ = table.Append("Verified", fmt.Sprintf("%t", user.Verified))
		_ = table.Append("Tenant", user.TenantID)

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
