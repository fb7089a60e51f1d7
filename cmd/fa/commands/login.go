package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		loginID       string
		password      string
		applicationID string
		code          string
		totpSecret    string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to FusionAuth",
		Long:  "Authenticate a user against a FusionAuth deployment and print the resulting tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createAuthenticatedClient()
			if err != nil {
				return err
			}

			if loginID == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Login id (email or username): ")
				loginID, _ = reader.ReadString('\n')
				loginID = strings.TrimSpace(loginID)
			}

			if loginID == "" {
				return ErrLoginIDRequired
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

			ctx := context.Background()

			result, err := client.Login().Login(ctx, &fusionauth.LoginRequest{
				LoginID:       loginID,
				Password:      password,
				ApplicationID: applicationID,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			// A two-factor id in the response means the password was
			// accepted but a second factor is still required.
			if result.TwoFactorID != "" {
				if code == "" && totpSecret != "" {
					code, err = fusionauth.GenerateTwoFactorCode(totpSecret)
					if err != nil {
						return fmt.Errorf("generating two-factor code: %w", err)
					}
				}

				if code == "" {
					reader := bufio.NewReader(os.Stdin)
					fmt.Print("Two-factor code: ")
					code, _ = reader.ReadString('\n')
					code = strings.TrimSpace(code)
				}

				result, err = client.Login().TwoFactorLogin(ctx, &fusionauth.TwoFactorLoginRequest{
					TwoFactorID:   result.TwoFactorID,
					Code:          code,
					ApplicationID: applicationID,
				})
				if err != nil {
					return fmt.Errorf("two-factor login failed: %w", err)
				}
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				if result.User != nil {
					fmt.Printf("Successfully logged in as %s\n", result.User.Email)
				} else {
					fmt.Println("Successfully logged in")
				}

				if result.Token != "" {
					fmt.Printf("Token: %s\n", result.Token)
				}

				if result.RefreshToken != "" {
					fmt.Printf("Refresh token: %s\n", result.RefreshToken)
				}
			}

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&loginID, "login-id", "l", "", "email or username to authenticate")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password for authentication")
	cmd.Flags().StringVarP(&applicationID, "application", "a", "", "application id to authenticate against")
	cmd.Flags().StringVar(&code, "code", "", "two-factor code")
	cmd.Flags().StringVar(&totpSecret, "totp-secret", "", "TOTP secret used to generate a two-factor code")

	return cmd
}
