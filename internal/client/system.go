package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// SystemClient implements fusionauth.SystemClient.
type SystemClient struct {
	rest *rest.Client
}

// NewSystemClient creates a new system client.
func NewSystemClient(restClient *rest.Client) *SystemClient {
	return &SystemClient{rest: restClient}
}

// Status implements fusionauth.SystemClient.Status. The status endpoint
// does not require an API key.
func (c *SystemClient) Status(ctx context.Context) (fusionauth.StatusResponse, error) {
	result := fusionauth.StatusResponse{}

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("status")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting system status: %w", err)
	}

	return result, nil
}

// Health implements fusionauth.SystemClient.Health. The health endpoint
// answers 200 with an empty body when the node can serve traffic, so
// success is the whole signal.
func (c *SystemClient) Health(ctx context.Context) error {
	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("health")

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("checking system health: %w", err)
	}

	return nil
}

// Version implements fusionauth.SystemClient.Version.
func (c *SystemClient) Version(ctx context.Context) (*fusionauth.VersionResponse, error) {
	var result fusionauth.VersionResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("system").Segment("version")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting system version: %w", err)
	}

	return &result, nil
}
