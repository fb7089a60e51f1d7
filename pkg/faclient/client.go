// Package faclient provides the main entry point for creating FusionAuth API clients
package faclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/fusionauth-client/internal/client"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// New creates a new FusionAuth API client from the given configuration.
func New(config *fusionauth.Config) (fusionauth.Client, error) {
	if config == nil {
		return nil, fusionauth.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, fusionauth.ErrBaseURLRequired
	}

	// Normalize base URL
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithBaseURL creates a new client with just a base URL (no API key).
func NewWithBaseURL(baseURL string) (fusionauth.Client, error) {
	return New(&fusionauth.Config{
		BaseURL: baseURL,
	})
}

// NewWithAPIKey creates a new client with a base URL and API key.
func NewWithAPIKey(baseURL, apiKey string) (fusionauth.Client, error) {
	return New(&fusionauth.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithTenant creates a new client scoped to a single tenant.
func NewWithTenant(baseURL, apiKey, tenantID string) (fusionauth.Client, error) {
	return New(&fusionauth.Config{
		BaseURL:  baseURL,
		APIKey:   apiKey,
		TenantID: tenantID,
	})
}
