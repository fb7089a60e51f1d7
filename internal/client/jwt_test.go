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

func TestJWTClient_Issue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jwt/issue", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		// The user's token is the credential, not the API key.
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "app-1", r.URL.Query().Get("applicationId"))

		_ = json.NewEncoder(w).Encode(fusionauth.IssueResponse{Token: "new-jwt"})
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := jwt.Issue(context.Background(), "user-jwt", "app-1", "")
	require.NoError(t, err)
	assert.Equal(t, "new-jwt", result.Token)
}

func TestJWTClient_Reissue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jwt/refresh", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body fusionauth.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-1", body.RefreshToken)

		_ = json.NewEncoder(w).Encode(fusionauth.RefreshResponse{
			Token:        "new-jwt",
			RefreshToken: "refresh-2",
		})
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL))

	result, err := jwt.Reissue(context.Background(), &fusionauth.RefreshRequest{RefreshToken: "refresh-1"})
	require.NoError(t, err)
	assert.Equal(t, "new-jwt", result.Token)
	assert.Equal(t, "refresh-2", result.RefreshToken)
}

func TestJWTClient_Validate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jwt/validate", r.URL.Path)
		assert.Equal(t, "Bearer user-jwt", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(fusionauth.ValidateResponse{
			JWT: map[string]interface{}{"sub": "user-1"},
		})
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL))

	result, err := jwt.Validate(context.Background(), "user-jwt")
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.JWT["sub"])
}

func TestJWTClient_ValidateExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL))

	_, err := jwt.Validate(context.Background(), "expired-jwt")
	require.Error(t, err)
	assert.True(t, fusionauth.IsUnauthorized(err))
}

func TestJWTClient_GetPublicKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Query().Get("kid") != "":
			assert.Equal(t, "key-1", r.URL.Query().Get("kid"))
			_ = json.NewEncoder(w).Encode(fusionauth.PublicKeyResponse{PublicKey: "-----BEGIN PUBLIC KEY-----"})
		default:
			_ = json.NewEncoder(w).Encode(fusionauth.PublicKeyResponse{
				PublicKeys: map[string]string{"key-1": "-----BEGIN PUBLIC KEY-----"},
			})
		}
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL))

	single, err := jwt.GetPublicKey(context.Background(), "key-1")
	require.NoError(t, err)
	assert.NotEmpty(t, single.PublicKey)

	all, err := jwt.GetPublicKeys(context.Background())
	require.NoError(t, err)
	assert.Contains(t, all.PublicKeys, "key-1")
}

func TestJWTClient_GetJSONWebKeySet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/.well-known/jwks.json", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(fusionauth.JWKSResponse{
			Keys: []fusionauth.JSONWebKey{{Kid: "key-1", Kty: "RSA", Alg: "RS256"}},
		})
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := jwt.GetJSONWebKeySet(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Keys, 1)
	assert.Equal(t, "key-1", result.Keys[0].Kid)
}

func TestJWTClient_RefreshTokens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/api/jwt/refresh", r.URL.Path)
			assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))
			assert.Equal(t, "user-1", r.URL.Query().Get("userId"))
			_ = json.NewEncoder(w).Encode(fusionauth.RefreshTokenResponse{
				RefreshTokens: []fusionauth.RefreshToken{{ID: "rt-1", UserID: "user-1"}},
			})
		case http.MethodDelete:
			assert.Equal(t, "refresh-1", r.URL.Query().Get("token"))
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	jwt := NewJWTClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := jwt.GetRefreshTokens(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, result.RefreshTokens, 1)
	assert.Equal(t, "rt-1", result.RefreshTokens[0].ID)

	require.NoError(t, jwt.RevokeRefreshToken(context.Background(), "refresh-1", "", ""))
}
