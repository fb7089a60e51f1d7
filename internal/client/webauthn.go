package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// WebAuthnClient implements fusionauth.WebAuthnClient.
type WebAuthnClient struct {
	rest *rest.Client
}

// NewWebAuthnClient creates a new WebAuthn client.
func NewWebAuthnClient(restClient *rest.Client) *WebAuthnClient {
	return &WebAuthnClient{rest: restClient}
}

// StartRegistration implements fusionauth.WebAuthnClient.StartRegistration.
func (c *WebAuthnClient) StartRegistration(ctx context.Context, request *fusionauth.WebAuthnRegisterStartRequest) (*fusionauth.WebAuthnRegisterStartResponse, error) {
	var result fusionauth.WebAuthnRegisterStartResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("webauthn").Segment("register").Segment("start").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("starting webauthn registration: %w", err)
	}

	return &result, nil
}

// CompleteRegistration implements fusionauth.WebAuthnClient.CompleteRegistration.
func (c *WebAuthnClient) CompleteRegistration(ctx context.Context, request *fusionauth.WebAuthnRegisterCompleteRequest) (*fusionauth.WebAuthnCredentialResponse, error) {
	var result fusionauth.WebAuthnCredentialResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("webauthn").Segment("register").Segment("complete").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("completing webauthn registration: %w", err)
	}

	return &result, nil
}

// StartAssertion implements fusionauth.WebAuthnClient.StartAssertion.
func (c *WebAuthnClient) StartAssertion(ctx context.Context, request *fusionauth.WebAuthnStartRequest) (*fusionauth.WebAuthnStartResponse, error) {
	var result fusionauth.WebAuthnStartResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("webauthn").Segment("start").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("starting webauthn assertion: %w", err)
	}

	return &result, nil
}

// CompleteAssertion implements fusionauth.WebAuthnClient.CompleteAssertion.
func (c *WebAuthnClient) CompleteAssertion(ctx context.Context, request *fusionauth.WebAuthnLoginRequest) (*fusionauth.LoginResponse, error) {
	var result fusionauth.LoginResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("webauthn").Segment("login").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("completing webauthn assertion: %w", err)
	}

	return &result, nil
}

// GetCredential implements fusionauth.WebAuthnClient.GetCredential.
func (c *WebAuthnClient) GetCredential(ctx context.Context, credentialID string) (*fusionauth.WebAuthnCredentialResponse, error) {
	var result fusionauth.WebAuthnCredentialResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("webauthn").Segment(credentialID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting webauthn credential: %w", err)
	}

	return &result, nil
}

// GetCredentialsForUser implements fusionauth.WebAuthnClient.GetCredentialsForUser.
func (c *WebAuthnClient) GetCredentialsForUser(ctx context.Context, userID string) (*fusionauth.WebAuthnCredentialResponse, error) {
	var result fusionauth.WebAuthnCredentialResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("webauthn").
		Param("userId", userID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting webauthn credentials for user: %w", err)
	}

	return &result, nil
}

// DeleteCredential implements fusionauth.WebAuthnClient.DeleteCredential.
func (c *WebAuthnClient) DeleteCredential(ctx context.Context, credentialID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("webauthn").Segment(credentialID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("deleting webauthn credential: %w", err)
	}

	return nil
}
