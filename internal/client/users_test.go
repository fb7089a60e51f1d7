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

func TestUsersClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body fusionauth.UserRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.User)
		assert.Equal(t, "jane@example.com", body.User.Email)

		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: &fusionauth.User{
				ID:    "user-1",
				Email: "jane@example.com",
			},
		})
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := users.Create(context.Background(), "", &fusionauth.UserRequest{
		User: &fusionauth.User{Email: "jane@example.com", Password: "secret"},
	})
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestUsersClient_GetByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))

		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			User: &fusionauth.User{ID: "user-1", Email: "jane@example.com"},
		})
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestUsersClient_GetByIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user", r.URL.Path)
		assert.Equal(t, []string{"user-1", "user-2"}, r.URL.Query()["ids"])

		_ = json.NewEncoder(w).Encode(fusionauth.UserResponse{
			Users: []fusionauth.User{{ID: "user-1"}, {ID: "user-2"}},
		})
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := users.GetByIDs(context.Background(), []string{"user-1", "user-2"})
	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
}

func TestUsersClient_Delete(t *testing.T) {
	t.Run("hard delete sets the flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/user/user-1", r.URL.Path)
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "true", r.URL.Query().Get("hardDelete"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

		require.NoError(t, users.Delete(context.Background(), "user-1", true))
	})

	t.Run("soft delete omits the flag", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("hardDelete"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

		require.NoError(t, users.Delete(context.Background(), "user-1", false))
	})
}

func TestUsersClient_VerifyEmailIsAnonymous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/verify-email/verification-1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	require.NoError(t, users.VerifyEmail(context.Background(), "verification-1"))
}

func TestUsersClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	_, err := users.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, fusionauth.IsNotFound(err))
}

func TestUsersClient_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(fusionauth.Errors{
			FieldErrors: map[string][]fusionauth.ErrorDetail{
				"user.email": {{Code: "[invalid]user.email", Message: "Invalid email"}},
			},
		})
	}))
	defer server.Close()

	users := NewUsersClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	_, err := users.Create(context.Background(), "", &fusionauth.UserRequest{
		User: &fusionauth.User{Email: "not-an-email"},
	})
	require.Error(t, err)
	assert.True(t, fusionauth.IsBadRequest(err))

	apiErr := &fusionauth.APIError{}
	require.ErrorAs(t, err, &apiErr)
	require.NotNil(t, apiErr.Errors)
	assert.Contains(t, apiErr.Errors.FieldErrors, "user.email")
}
