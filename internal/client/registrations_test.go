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

func TestRegistrationsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/registration/user-1", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body fusionauth.RegistrationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "app-1", body.Registration.ApplicationID)
		assert.Equal(t, []string{"admin"}, body.Registration.Roles)

		_ = json.NewEncoder(w).Encode(fusionauth.RegistrationResponse{
			Registration: &fusionauth.UserRegistration{ID: "reg-1", ApplicationID: "app-1"},
		})
	}))
	defer server.Close()

	registrations := NewRegistrationsClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := registrations.Create(context.Background(), "user-1", &fusionauth.RegistrationRequest{
		Registration: &fusionauth.UserRegistration{
			ApplicationID: "app-1",
			Roles:         []string{"admin"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "reg-1", result.Registration.ID)
}

func TestRegistrationsClient_CreateWithUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// An empty user id registers a brand new user in the same call.
		assert.Equal(t, "/api/user/registration", r.URL.Path)

		var body fusionauth.RegistrationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body.User.Email)
		assert.True(t, body.SkipVerification)

		_ = json.NewEncoder(w).Encode(fusionauth.RegistrationResponse{
			Registration: &fusionauth.UserRegistration{ID: "reg-1"},
			User:         &fusionauth.User{ID: "user-1", Email: "jane@example.com"},
		})
	}))
	defer server.Close()

	registrations := NewRegistrationsClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := registrations.Create(context.Background(), "", &fusionauth.RegistrationRequest{
		Registration:     &fusionauth.UserRegistration{ApplicationID: "app-1"},
		User:             &fusionauth.User{Email: "jane@example.com", Password: "secret"},
		SkipVerification: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", result.User.ID)
}

func TestRegistrationsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/registration/user-1/app-1", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		_ = json.NewEncoder(w).Encode(fusionauth.RegistrationResponse{
			Registration: &fusionauth.UserRegistration{ID: "reg-1", ApplicationID: "app-1"},
		})
	}))
	defer server.Close()

	registrations := NewRegistrationsClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	result, err := registrations.Get(context.Background(), "user-1", "app-1")
	require.NoError(t, err)
	assert.Equal(t, "app-1", result.Registration.ApplicationID)
}

func TestRegistrationsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/registration/user-1/app-1", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	registrations := NewRegistrationsClient(rest.NewClient(server.URL, rest.WithAuthorization("test-api-key")))

	require.NoError(t, registrations.Delete(context.Background(), "user-1", "app-1"))
}
