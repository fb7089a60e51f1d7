package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/fivetwenty-io/fusionauth-client/pkg/fusionauth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthClient_ExchangeCodeForAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/token", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		// Client authentication rides in a Basic header, not the form.
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-1", username)
		assert.Equal(t, "secret", password)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "auth-code", r.PostForm.Get("code"))
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "https://app.example.com/cb", r.PostForm.Get("redirect_uri"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "token-1",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	oauth := NewOAuthClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	token, err := oauth.ExchangeCodeForAccessToken(context.Background(), "auth-code", "client-1", "secret", "https://app.example.com/cb")
	require.NoError(t, err)
	assert.Equal(t, "token-1", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestOAuthClient_ClientCredentialsGrant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "target-entity:read", r.PostForm.Get("scope"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "token-2"})
	}))
	defer server.Close()

	oauth := NewOAuthClient(rest.NewClient(server.URL))

	token, err := oauth.ClientCredentialsGrant(context.Background(), "client-1", "secret", "target-entity:read")
	require.NoError(t, err)
	assert.Equal(t, "token-2", token.AccessToken)
}

func TestOAuthClient_ErrorDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "The authorization code is invalid",
		})
	}))
	defer server.Close()

	oauth := NewOAuthClient(rest.NewClient(server.URL))

	_, err := oauth.ExchangeCodeForAccessToken(context.Background(), "bad-code", "client-1", "secret", "https://app.example.com/cb")
	require.Error(t, err)

	oauthErr := &fusionauth.OAuthError{}
	require.ErrorAs(t, err, &oauthErr)
	assert.Equal(t, "invalid_grant", oauthErr.Code)
	assert.Equal(t, "The authorization code is invalid", oauthErr.Description)
}

func TestOAuthClient_Introspect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/introspect", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client-1", r.PostForm.Get("client_id"))
		assert.Equal(t, "token-1", r.PostForm.Get("token"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"active": true,
			"sub":    "user-1",
		})
	}))
	defer server.Close()

	oauth := NewOAuthClient(rest.NewClient(server.URL))

	claims, err := oauth.Introspect(context.Background(), "token-1", "client-1", "")
	require.NoError(t, err)
	assert.True(t, claims.Active())
	assert.Equal(t, "user-1", claims["sub"])
}

func TestOAuthClient_GetUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oauth2/userinfo", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sub":   "user-1",
			"email": "jane@example.com",
		})
	}))
	defer server.Close()

	oauth := NewOAuthClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	info, err := oauth.GetUserInfo(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", info["email"])
}
