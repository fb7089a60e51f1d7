package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// SearchClient implements fusionauth.SearchClient.
type SearchClient struct {
	rest *rest.Client
}

// NewSearchClient creates a new search client.
func NewSearchClient(restClient *rest.Client) *SearchClient {
	return &SearchClient{rest: restClient}
}

// Users implements fusionauth.SearchClient.Users.
func (c *SearchClient) Users(ctx context.Context, request *fusionauth.SearchRequest) (*fusionauth.SearchResponse, error) {
	var result fusionauth.SearchResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("search").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("searching users: %w", err)
	}

	return &result, nil
}

// AuditLogs implements fusionauth.SearchClient.AuditLogs.
func (c *SearchClient) AuditLogs(ctx context.Context, request *fusionauth.AuditLogSearchRequest) (*fusionauth.AuditLogSearchResponse, error) {
	var result fusionauth.AuditLogSearchResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("system").Segment("audit-log").Segment("search").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("searching audit logs: %w", err)
	}

	return &result, nil
}

// LoginRecords implements fusionauth.SearchClient.LoginRecords.
func (c *SearchClient) LoginRecords(ctx context.Context, request *fusionauth.LoginRecordSearchRequest) (*fusionauth.LoginRecordSearchResponse, error) {
	var result fusionauth.LoginRecordSearchResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("system").Segment("login-record").Segment("search").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("searching login records: %w", err)
	}

	return &result, nil
}
