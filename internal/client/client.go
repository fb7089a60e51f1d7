// Package client implements the fusionauth.Client interface: one thin
// wrapper per API endpoint, all built on the internal/rest invocation core.
package client

import (
	"context"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// TenantHeader scopes requests to a tenant when a tenant id is configured.
const TenantHeader = "X-FusionAuth-TenantId"

// Client implements the fusionauth.Client interface.
type Client struct {
	rest    *rest.Client
	baseURL string
	logger  fusionauth.Logger

	applications  fusionauth.ApplicationsClient
	users         fusionauth.UsersClient
	registrations fusionauth.RegistrationsClient
	groups        fusionauth.GroupsClient
	tenants       fusionauth.TenantsClient
	login         fusionauth.LoginClient
	jwt           fusionauth.JWTClient
	oauth         fusionauth.OAuthClient
	twoFactor     fusionauth.TwoFactorClient
	webAuthn      fusionauth.WebAuthnClient
	search        fusionauth.SearchClient
	system        fusionauth.SystemClient
}

// buildRestOptions translates client configuration into rest core options.
func buildRestOptions(config *fusionauth.Config) []rest.Option {
	var opts []rest.Option

	if config.APIKey != "" {
		opts = append(opts, rest.WithAuthorization(config.APIKey))
	}

	if config.TenantID != "" {
		opts = append(opts, rest.WithDefaultHeader(TenantHeader, config.TenantID))
	}

	if config.ConnectTimeout > 0 || config.ReadTimeout > 0 {
		opts = append(opts, rest.WithTimeouts(config.ConnectTimeout, config.ReadTimeout))
	}

	if config.TLSClientCert != "" {
		opts = append(opts, rest.WithTLSClientCert(config.TLSClientCert, config.TLSClientKey))
	}

	if config.ProxyURL != "" {
		opts = append(opts, rest.WithProxy(&rest.ProxyConfig{
			URL:      config.ProxyURL,
			Username: config.ProxyUsername,
			Password: config.ProxyPassword,
		}))
	}

	if config.UserAgent != "" {
		opts = append(opts, rest.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, rest.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, rest.WithDebug(true))
	}

	return opts
}

// New creates a new FusionAuth API client.
func New(config *fusionauth.Config) (*Client, error) {
	if config == nil {
		return nil, fusionauth.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, fusionauth.ErrBaseURLRequired
	}

	client := &Client{
		rest:    rest.NewClient(config.BaseURL, buildRestOptions(config)...),
		baseURL: config.BaseURL,
		logger:  config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.applications = NewApplicationsClient(c.rest)
	c.users = NewUsersClient(c.rest)
	c.registrations = NewRegistrationsClient(c.rest)
	c.groups = NewGroupsClient(c.rest)
	c.tenants = NewTenantsClient(c.rest)
	c.login = NewLoginClient(c.rest)
	c.jwt = NewJWTClient(c.rest)
	c.oauth = NewOAuthClient(c.rest)
	c.twoFactor = NewTwoFactorClient(c.rest)
	c.webAuthn = NewWebAuthnClient(c.rest)
	c.search = NewSearchClient(c.rest)
	c.system = NewSystemClient(c.rest)
}

// Applications implements fusionauth.Client.Applications.
func (c *Client) Applications() fusionauth.ApplicationsClient {
	return c.applications
}

// Users implements fusionauth.Client.Users.
func (c *Client) Users() fusionauth.UsersClient {
	return c.users
}

// Registrations implements fusionauth.Client.Registrations.
func (c *Client) Registrations() fusionauth.RegistrationsClient {
	return c.registrations
}

// Groups implements fusionauth.Client.Groups.
func (c *Client) Groups() fusionauth.GroupsClient {
	return c.groups
}

// Tenants implements fusionauth.Client.Tenants.
func (c *Client) Tenants() fusionauth.TenantsClient {
	return c.tenants
}

// Login implements fusionauth.Client.Login.
func (c *Client) Login() fusionauth.LoginClient {
	return c.login
}

// JWT implements fusionauth.Client.JWT.
func (c *Client) JWT() fusionauth.JWTClient {
	return c.jwt
}

// OAuth implements fusionauth.Client.OAuth.
func (c *Client) OAuth() fusionauth.OAuthClient {
	return c.oauth
}

// TwoFactor implements fusionauth.Client.TwoFactor.
func (c *Client) TwoFactor() fusionauth.TwoFactorClient {
	return c.twoFactor
}

// WebAuthn implements fusionauth.Client.WebAuthn.
func (c *Client) WebAuthn() fusionauth.WebAuthnClient {
	return c.webAuthn
}

// Search implements fusionauth.Client.Search.
func (c *Client) Search() fusionauth.SearchClient {
	return c.search
}

// System implements fusionauth.Client.System.
func (c *Client) System() fusionauth.SystemClient {
	return c.system
}

// send executes a built request and converts the envelope into the error
// model Go callers expect: configuration, transport, and decode failures
// propagate as errors, and a non-2xx status becomes a *fusionauth.APIError
// carrying the decoded error body when one was returned.
func send(ctx context.Context, builder *rest.Builder, out interface{}) (*rest.Response, error) {
	apiErrors := &fusionauth.Errors{}

	if out != nil {
		builder.Success(out)
	}

	response, err := builder.ErrorOut(apiErrors).Execute(ctx)
	if err != nil {
		return nil, err
	}

	if response.Err != nil {
		return response, response.Err
	}

	if !response.WasSuccessful() {
		apiErr := &fusionauth.APIError{StatusCode: response.StatusCode}
		if response.ErrorResult != nil {
			apiErr.Errors = apiErrors
		}

		return response, apiErr
	}

	return response, nil
}
