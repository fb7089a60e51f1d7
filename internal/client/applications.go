package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// ApplicationsClient implements fusionauth.ApplicationsClient.
type ApplicationsClient struct {
	rest *rest.Client
}

// NewApplicationsClient creates a new applications client.
func NewApplicationsClient(restClient *rest.Client) *ApplicationsClient {
	return &ApplicationsClient{rest: restClient}
}

// Create implements fusionauth.ApplicationsClient.Create. An empty
// applicationID lets the server generate one.
func (c *ApplicationsClient) Create(ctx context.Context, applicationID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("application").Segment(applicationID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	return &result, nil
}

// Get implements fusionauth.ApplicationsClient.Get. Inactive applications
// are returned as well.
func (c *ApplicationsClient) Get(ctx context.Context, applicationID string) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("application").Segment(applicationID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting application: %w", err)
	}

	return &result, nil
}

// List implements fusionauth.ApplicationsClient.List.
func (c *ApplicationsClient) List(ctx context.Context, inactive bool) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("application")

	if inactive {
		req.Param("inactive", true)
	}

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	return &result, nil
}

// Update implements fusionauth.ApplicationsClient.Update.
func (c *ApplicationsClient) Update(ctx context.Context, applicationID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("application").Segment(applicationID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	return &result, nil
}

// Deactivate implements fusionauth.ApplicationsClient.Deactivate. A delete
// without the hardDelete flag only marks the application inactive.
func (c *ApplicationsClient) Deactivate(ctx context.Context, applicationID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("application").Segment(applicationID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deactivating application: %w", err)
	}

	return nil
}

// Reactivate implements fusionauth.ApplicationsClient.Reactivate.
func (c *ApplicationsClient) Reactivate(ctx context.Context, applicationID string) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("application").Segment(applicationID).
		Param("reactivate", true)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("reactivating application: %w", err)
	}

	return &result, nil
}

// Delete implements fusionauth.ApplicationsClient.Delete.
func (c *ApplicationsClient) Delete(ctx context.Context, applicationID string, hardDelete bool) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("application").Segment(applicationID)

	if hardDelete {
		req.Param("hardDelete", true)
	}

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	return nil
}

// CreateRole implements fusionauth.ApplicationsClient.CreateRole.
func (c *ApplicationsClient) CreateRole(ctx context.Context, applicationID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("application").Segment(applicationID).Segment("role").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating application role: %w", err)
	}

	return &result, nil
}

// UpdateRole implements fusionauth.ApplicationsClient.UpdateRole.
func (c *ApplicationsClient) UpdateRole(ctx context.Context, applicationID, roleID string, request *fusionauth.ApplicationRequest) (*fusionauth.ApplicationResponse, error) {
	var result fusionauth.ApplicationResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("application").Segment(applicationID).Segment("role").Segment(roleID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating application role: %w", err)
	}

	return &result, nil
}

// DeleteRole implements fusionauth.ApplicationsClient.DeleteRole.
func (c *ApplicationsClient) DeleteRole(ctx context.Context, applicationID, roleID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("application").Segment(applicationID).Segment("role").Segment(roleID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting application role: %w", err)
	}

	return nil
}

// GetOAuthConfiguration implements fusionauth.ApplicationsClient.GetOAuthConfiguration.
func (c *ApplicationsClient) GetOAuthConfiguration(ctx context.Context, applicationID string) (*fusionauth.OAuthConfigurationResponse, error) {
	var result fusionauth.OAuthConfigurationResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("application").Segment(applicationID).Segment("oauth-configuration")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting OAuth configuration: %w", err)
	}

	return &result, nil
}
