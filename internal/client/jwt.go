package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
)

// JWTClient implements fusionauth.JWTClient.
type JWTClient struct {
	rest *rest.Client
}

// NewJWTClient creates a new JWT client.
func NewJWTClient(restClient *rest.Client) *JWTClient {
	return &JWTClient{rest: restClient}
}

// Issue implements fusionauth.JWTClient.Issue. The caller's existing JWT is
// the credential; the issued token targets a different application without
// another login.
func (c *JWTClient) Issue(ctx context.Context, bearerToken, applicationID, refreshToken string) (*fusionauth.IssueResponse, error) {
	var result fusionauth.IssueResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("issue").
		Param("applicationId", applicationID).
		Param("refreshToken", refreshToken).
		Authorization("Bearer " + bearerToken)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("issuing JWT: %w", err)
	}

	return &result, nil
}

// Reissue implements fusionauth.JWTClient.Reissue: exchanges a refresh
// token for a new access token. Anonymous.
func (c *JWTClient) Reissue(ctx context.Context, request *fusionauth.RefreshRequest) (*fusionauth.RefreshResponse, error) {
	var result fusionauth.RefreshResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodPost).
		Segment("api").Segment("jwt").Segment("refresh").
		Body(rest.JSONBody(request))

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("reissuing JWT: %w", err)
	}

	return &result, nil
}

// Validate implements fusionauth.JWTClient.Validate. Anonymous: the JWT is
// validated by signature, sent as a bearer credential.
func (c *JWTClient) Validate(ctx context.Context, encodedJWT string) (*fusionauth.ValidateResponse, error) {
	var result fusionauth.ValidateResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("validate").
		Authorization("Bearer " + encodedJWT)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("validating JWT: %w", err)
	}

	return &result, nil
}

// GetPublicKey implements fusionauth.JWTClient.GetPublicKey.
func (c *JWTClient) GetPublicKey(ctx context.Context, keyID string) (*fusionauth.PublicKeyResponse, error) {
	var result fusionauth.PublicKeyResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("public-key").
		Param("kid", keyID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting public key: %w", err)
	}

	return &result, nil
}

// GetPublicKeyByApplication implements fusionauth.JWTClient.GetPublicKeyByApplication.
func (c *JWTClient) GetPublicKeyByApplication(ctx context.Context, applicationID string) (*fusionauth.PublicKeyResponse, error) {
	var result fusionauth.PublicKeyResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("public-key").
		Param("applicationId", applicationID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting public key by application: %w", err)
	}

	return &result, nil
}

// GetPublicKeys implements fusionauth.JWTClient.GetPublicKeys.
func (c *JWTClient) GetPublicKeys(ctx context.Context) (*fusionauth.PublicKeyResponse, error) {
	var result fusionauth.PublicKeyResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("public-key")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting public keys: %w", err)
	}

	return &result, nil
}

// GetJSONWebKeySet implements fusionauth.JWTClient.GetJSONWebKeySet.
func (c *JWTClient) GetJSONWebKeySet(ctx context.Context) (*fusionauth.JWKSResponse, error) {
	var result fusionauth.JWKSResponse

	req := c.rest.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment(".well-known").Segment("jwks.json")

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting JSON web key set: %w", err)
	}

	return &result, nil
}

// GetRefreshTokens implements fusionauth.JWTClient.GetRefreshTokens.
func (c *JWTClient) GetRefreshTokens(ctx context.Context, userID string) (*fusionauth.RefreshTokenResponse, error) {
	var result fusionauth.RefreshTokenResponse

	req := c.rest.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("jwt").Segment("refresh").
		Param("userId", userID)

	if _, err := send(ctx, req, &result); err != nil {
		return nil, fmt.Errorf("getting refresh tokens: %w", err)
	}

	return &result, nil
}

// RevokeRefreshToken implements fusionauth.JWTClient.RevokeRefreshToken.
// Any combination of token, userID, and applicationID narrows what is
// revoked; empty values are not sent.
func (c *JWTClient) RevokeRefreshToken(ctx context.Context, token, userID, applicationID string) error {
	req := c.rest.NewRequest().
		Method(http.MethodDelete).
		Segment("api").Segment("jwt").Segment("refresh").
		Param("token", token).
		Param("userId", userID).
		Param("applicationId", applicationID)

	if _, err := send(ctx, req, nil); err != nil {
		return fmt.Errorf("revoking refresh token: %w", err)
	}

	return nil
}
