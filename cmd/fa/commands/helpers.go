package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fivetwenty-io/fusionauth-client/pkg/faclient"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrBaseURLRequired   = errors.New("base URL is required (use --url or set FA_URL)")
	ErrAPIKeyRequired    = errors.New("API key is required (use --api-key or set FA_API_KEY)")
	ErrLoginIDRequired   = errors.New("login id is required")
	ErrUserIDRequired    = errors.New("user id is required")
	ErrTenantIDRequired  = errors.New("tenant id is required")
	ErrNameRequired      = errors.New("name is required")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidOutputData = errors.New("invalid output data")
)

// createClient builds a FusionAuth client from the effective CLI configuration.
func createClient() (fusionauth.Client, error) {
	baseURL := viper.GetString("url")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	config := &fusionauth.Config{
		BaseURL:  baseURL,
		APIKey:   viper.GetString("api-key"),
		TenantID: viper.GetString("tenant"),
		Debug:    viper.GetBool("verbose"),
	}

	client, err := faclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// createAuthenticatedClient is createClient but requires an API key.
func createAuthenticatedClient() (fusionauth.Client, error) {
	if viper.GetString("api-key") == "" {
		return nil, ErrAPIKeyRequired
	}

	return createClient()
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}
