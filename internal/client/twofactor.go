package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// TwoFactorClient implements fusionauth.TwoFactorClient.
type TwoFactorClient struct {
	rest *rest.Client
}

// NewTwoFactorClient creates a new two-factor client.
func NewTwoFactorClient(restClient *rest.Client) *TwoFactorClient {
	return &TwoFactorClient{rest: restClient}
}

// Enable implements fusionauth.TwoFactorClient.Enable.
func (c *TwoFactorClient) Enable(ctx context.Context, userID string, request *fusionauth.TwoFactorRequest) (*fusionauth.TwoFactorResponse, error) {
	var result fusionauth.TwoFactorResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").Segment("two-factor").Segment(userID).
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("enabling two-factor method: %w", err)
	}

	return &result, nil
}

// Disable implements fusionauth.TwoFactorClient.Disable.
func (c *TwoFactorClient) Disable(ctx context.Context, userID, code, methodID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("user").Segment("two-factor").Segment(userID).
		Param("code", code).
		Param("methodId", methodID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("disabling two-factor method: %w", err)
	}

	return nil
}

// SendCode implements fusionauth.TwoFactorClient.SendCode.
func (c *TwoFactorClient) SendCode(ctx context.Context, request *fusionauth.TwoFactorSendRequest) error {
	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("two-factor").Segment("send").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("sending two-factor code: %w", err)
	}

	return nil
}

// StartLogin implements fusionauth.TwoFactorClient.StartLogin.
func (c *TwoFactorClient) StartLogin(ctx context.Context, request *fusionauth.TwoFactorStartRequest) (*fusionauth.TwoFactorStartResponse, error) {
	var result fusionauth.TwoFactorStartResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("two-factor").Segment("start").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("starting two-factor login: %w", err)
	}

	return &result, nil
}
