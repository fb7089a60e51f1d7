package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// TenantsClient implements fusionauth.TenantsClient.
type TenantsClient struct {
	rest *rest.Client
}

// NewTenantsClient creates a new tenants client.
func NewTenantsClient(restClient *rest.Client) *TenantsClient {
	return &TenantsClient{rest: restClient}
}

// Create implements fusionauth.TenantsClient.Create.
func (c *TenantsClient) Create(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	var result fusionauth.TenantResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("tenant").Segment(tenantID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("creating tenant: %w", err)
	}

	return &result, nil
}

// Get implements fusionauth.TenantsClient.Get.
func (c *TenantsClient) Get(ctx context.Context, tenantID string) (*fusionauth.TenantResponse, error) {
	var result fusionauth.TenantResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("tenant").Segment(tenantID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting tenant: %w", err)
	}

	return &result, nil
}

// List implements fusionauth.TenantsClient.List.
func (c *TenantsClient) List(ctx context.Context) (*fusionauth.TenantResponse, error) {
	var result fusionauth.TenantResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("tenant")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}

	return &result, nil
}

// Update implements fusionauth.TenantsClient.Update.
func (c *TenantsClient) Update(ctx context.Context, tenantID string, request *fusionauth.TenantRequest) (*fusionauth.TenantResponse, error) {
	var result fusionauth.TenantResponse

	req := c.rest.NewRequest().
		Method(http.MethodPut).
		Segment("api").Segment("tenant").Segment(tenantID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("updating tenant: %w", err)
	}

	return &result, nil
}

// Delete implements fusionauth.TenantsClient.Delete. Tenant deletes cascade
// across all of the tenant's data; async returns before the cascade
// completes.
func (c *TenantsClient) Delete(ctx context.Context, tenantID string, async bool) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("tenant").Segment(tenantID)

	if async {
		req.Param("async", true)
	}

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}

	return nil
}
