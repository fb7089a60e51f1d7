package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// OAuthClient implements fusionauth.OAuthClient. The OAuth2 endpoints speak
// form-urlencoded request bodies and report failures with the RFC 6749
// error document rather than the FusionAuth error body, so this client has
// its own envelope conversion.
type OAuthClient struct {
	rest *rest.Client
}

// NewOAuthClient creates a new OAuth client.
func NewOAuthClient(restClient *rest.Client) *OAuthClient {
	return &OAuthClient{rest: restClient}
}

// sendOAuth executes an OAuth request, decoding failures into OAuthError.
func sendOAuth(ctx context.Context, builder *rest.Builder, out interface{}) error {
	oauthErr := &fusionauth.OAuthError{}

	response, err := builder.Success(out).ErrorOut(oauthErr).Execute(ctx)
	if err != nil {
		return err
	}

	if response.Err != nil {
		return response.Err
	}

	if !response.WasSuccessful() {
		if response.ErrorResult != nil {
			return oauthErr
		}

		return &fusionauth.APIError{StatusCode: response.StatusCode}
	}

	return nil
}

// ExchangeCodeForAccessToken implements fusionauth.OAuthClient.ExchangeCodeForAccessToken.
func (c *OAuthClient) ExchangeCodeForAccessToken(ctx context.Context, code, clientID, clientSecret, redirectURI string) (*fusionauth.AccessToken, error) {
	var result fusionauth.AccessToken

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", clientID)
	form.Set("redirect_uri", redirectURI)

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("oauth2").Segment("token").
		BasicAuthorization(clientID, clientSecret).
		Body(rest.FormBody(form))

	if err := sendOAuth(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return &result, nil
}

// ClientCredentialsGrant implements fusionauth.OAuthClient.ClientCredentialsGrant.
func (c *OAuthClient) ClientCredentialsGrant(ctx context.Context, clientID, clientSecret, scope string) (*fusionauth.AccessToken, error) {
	var result fusionauth.AccessToken

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	if scope != "" {
		form.Set("scope", scope)
	}

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("oauth2").Segment("token").
		BasicAuthorization(clientID, clientSecret).
		Body(rest.FormBody(form))

	if err := sendOAuth(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("requesting client credentials grant: %w", err)
	}

	return &result, nil
}

// RefreshTokenGrant implements fusionauth.OAuthClient.RefreshTokenGrant.
func (c *OAuthClient) RefreshTokenGrant(ctx context.Context, refreshToken, clientID, clientSecret string) (*fusionauth.AccessToken, error) {
	var result fusionauth.AccessToken

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", clientID)

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("oauth2").Segment("token").
		BasicAuthorization(clientID, clientSecret).
		Body(rest.FormBody(form))

	if err := sendOAuth(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("requesting refresh token grant: %w", err)
	}

	return &result, nil
}

// Introspect implements fusionauth.OAuthClient.Introspect.
func (c *OAuthClient) Introspect(ctx context.Context, token, clientID, clientSecret string) (fusionauth.IntrospectResponse, error) {
	result := fusionauth.IntrospectResponse{}

	form := url.Values{}
	form.Set("client_id", clientID)
	form.Set("token", token)

	if clientSecret != "" {
		form.Set("client_secret", clientSecret)
	}

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("oauth2").Segment("introspect").
		Body(rest.FormBody(form))

	if err := sendOAuth(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("introspecting token: %w", err)
	}

	return result, nil
}

// GetUserInfo implements fusionauth.OAuthClient.GetUserInfo.
func (c *OAuthClient) GetUserInfo(ctx context.Context, bearerToken string) (fusionauth.UserInfoResponse, error) {
	result := fusionauth.UserInfoResponse{}

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("oauth2").Segment("userinfo").
		Authorization("Bearer " + bearerToken)

	if err := sendOAuth(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting user info: %w", err)
	}

	return result, nil
}
