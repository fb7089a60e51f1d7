package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// LoginClient implements fusionauth.LoginClient.
type LoginClient struct {
	rest *rest.Client
}

// NewLoginClient creates a new login client.
func NewLoginClient(restClient *rest.Client) *LoginClient {
	return &LoginClient{rest: restClient}
}

// Login implements fusionauth.LoginClient.Login. A 202 means the user is
// not registered for the application; a 242 means a second factor is
// required and the response carries a TwoFactorID. Both are successful
// statuses at this layer.
func (c *LoginClient) Login(ctx context.Context, request *fusionauth.LoginRequest) (*fusionauth.LoginResponse, error) {
	var result fusionauth.LoginResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("login").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return &result, nil
}

// Logout implements fusionauth.LoginClient.Logout. Anonymous; the refresh
// token identifies the session. global revokes all of the user's refresh
// tokens.
func (c *LoginClient) Logout(ctx context.Context, global bool, refreshToken string) error {
	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("logout").
		Param("global", global).
		Param("refreshToken", refreshToken)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// PasswordlessStart implements fusionauth.LoginClient.PasswordlessStart.
func (c *LoginClient) PasswordlessStart(ctx context.Context, request *fusionauth.PasswordlessStartRequest) (*fusionauth.PasswordlessStartResponse, error) {
	var result fusionauth.PasswordlessStartResponse

	req := c.rest.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("passwordless").Segment("start").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("starting passwordless login: %w", err)
	}

	return &result, nil
}

// PasswordlessLogin implements fusionauth.LoginClient.PasswordlessLogin.
// Anonymous; the one-time code is the credential.
func (c *LoginClient) PasswordlessLogin(ctx context.Context, request *fusionauth.PasswordlessLoginRequest) (*fusionauth.LoginResponse, error) {
	var result fusionauth.LoginResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("passwordless").Segment("login").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("completing passwordless login: %w", err)
	}

	return &result, nil
}

// TwoFactorLogin implements fusionauth.LoginClient.TwoFactorLogin.
// Anonymous; the two-factor id and code are the credentials.
func (c *LoginClient) TwoFactorLogin(ctx context.Context, request *fusionauth.TwoFactorLoginRequest) (*fusionauth.LoginResponse, error) {
	var result fusionauth.LoginResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("two-factor").Segment("login").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("completing two-factor login: %w", err)
	}

	return &result, nil
}
