package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSegmentJoining(t *testing.T) {
	t.Parallel()

	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("single separating slash regardless of existing slashes", func(t *testing.T) {
		client := rest.NewClient(server.URL + "/")

		response, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("/api/").
			Segment("user").
			Segment("00000000-0000-0000-0000-000000000001").
			Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, response.WasSuccessful())
		assert.Equal(t, "/api/user/00000000-0000-0000-0000-000000000001", gotPath)
	})

	t.Run("empty segment is a no-op", func(t *testing.T) {
		client := rest.NewClient(server.URL)

		response, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").
			Segment("user").
			Segment("").
			Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, response.WasSuccessful())
		assert.Equal(t, "/api/user", gotPath)
	})
}

func TestBuilderParams(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := rest.NewClient(server.URL)

	t.Run("nil values are skipped", func(t *testing.T) {
		var stringPtr *string

		_, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("user").
			Param("email", nil).
			Param("username", stringPtr).
			Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotQuery)
	})

	t.Run("booleans serialize as true and false", func(t *testing.T) {
		_, err := client.NewRequest().
			Method(http.MethodDelete).
			Segment("api").Segment("user").Segment("user-1").
			Param("hardDelete", true).
			Param("global", false).
			Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"true"}, gotQuery["hardDelete"])
		assert.Equal(t, []string{"false"}, gotQuery["global"])
	})

	t.Run("slices fan out to repeated keys", func(t *testing.T) {
		_, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("user").
			Param("ids", []string{"id-1", "id-2", "id-3"}).
			Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"id-1", "id-2", "id-3"}, gotQuery["ids"])
	})

	t.Run("repeated calls accumulate", func(t *testing.T) {
		_, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("user").
			Param("ids", "id-1").
			Param("ids", "id-2").
			Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"id-1", "id-2"}, gotQuery["ids"])
	})
}

func TestBuilderAuthorization(t *testing.T) {
	t.Parallel()

	var gotAuth []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	t.Run("api key preloaded on authenticated requests", func(t *testing.T) {
		client := rest.NewClient(server.URL, rest.WithAuthorization("test-api-key"))

		_, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("user").
			Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"test-api-key"}, gotAuth)
	})

	t.Run("anonymous requests carry no authorization", func(t *testing.T) {
		client := rest.NewClient(server.URL, rest.WithAuthorization("test-api-key"))

		_, err := client.NewAnonymousRequest().
			Method(http.MethodGet).
			Segment("api").Segment("status").
			Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("last authorization wins and only one header is sent", func(t *testing.T) {
		client := rest.NewClient(server.URL, rest.WithAuthorization("test-api-key"))

		_, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("jwt").Segment("validate").
			Authorization("Bearer first").
			Authorization("Bearer second").
			Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Bearer second"}, gotAuth)
	})

	t.Run("basic authorization encodes credentials", func(t *testing.T) {
		client := rest.NewClient(server.URL)

		_, err := client.NewAnonymousRequest().
			Method(http.MethodPost).
			Segment("oauth2").Segment("token").
			BasicAuthorization("client-id", "client-secret").
			Execute(context.Background())
		require.NoError(t, err)
		// base64("client-id:client-secret")
		assert.Equal(t, []string{"Basic Y2xpZW50LWlkOmNsaWVudC1zZWNyZXQ="}, gotAuth)
	})

	t.Run("basic authorization with empty arguments is a no-op", func(t *testing.T) {
		client := rest.NewClient(server.URL)

		_, err := client.NewAnonymousRequest().
			Method(http.MethodPost).
			Segment("oauth2").Segment("token").
			BasicAuthorization("client-id", "").
			Execute(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestExecuteConfigurationErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		client := rest.NewClient("")

		response, err := client.NewRequest().Method(http.MethodGet).Execute(context.Background())
		require.Error(t, err)
		assert.Nil(t, response)

		var configErr *rest.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("hostless URL", func(t *testing.T) {
		t.Parallel()

		client := rest.NewClient("not-a-url")

		response, err := client.NewRequest().Method(http.MethodGet).Execute(context.Background())
		require.Error(t, err)
		assert.Nil(t, response)

		var configErr *rest.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("missing method", func(t *testing.T) {
		t.Parallel()

		client := rest.NewClient("http://localhost:9011")

		response, err := client.NewRequest().Segment("api").Execute(context.Background())
		require.Error(t, err)
		assert.Nil(t, response)

		var configErr *rest.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}

func TestExecuteTransportFailure(t *testing.T) {
	t.Parallel()

	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := rest.NewClient(server.URL)

	response, err := client.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("user").
		Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, response)
	require.Error(t, response.Err)
	assert.ErrorIs(t, response.Err, rest.ErrTransport)
	assert.Equal(t, 0, response.StatusCode)
	assert.False(t, response.WasSuccessful())
}

func TestExecuteReadTimeoutCoversBody(t *testing.T) {
	t.Parallel()

	// The handler answers headers immediately, then stalls before writing
	// the body. The read budget has to fire on the stalled body read, not
	// just on the wait for headers.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "13")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()

		time.Sleep(1500 * time.Millisecond)
		_, _ = w.Write([]byte(`{"ok":"true"}`))
	}))
	defer server.Close()

	client := rest.NewClient(server.URL, rest.WithTimeouts(time.Second, 150*time.Millisecond))

	start := time.Now()
	response, err := client.NewRequest().
		Method(http.MethodGet).
		Segment("api").Segment("status").
		Execute(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.NotNil(t, response)
	require.Error(t, response.Err)
	assert.ErrorIs(t, response.Err, rest.ErrTransport)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.False(t, response.WasSuccessful())
	assert.Less(t, elapsed, time.Second)
}

func TestExecuteClassification(t *testing.T) {
	t.Parallel()

	type userDoc struct {
		Email string `json:"email"`
	}

	type errorDoc struct {
		GeneralErrors []map[string]string `json:"generalErrors"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ok":
			_ = json.NewEncoder(w).Encode(userDoc{Email: "jane@example.com"})
		case "/api/missing":
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(errorDoc{
				GeneralErrors: []map[string]string{{"code": "[notFound]"}},
			})
		case "/api/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/api/garbage":
			_, _ = w.Write([]byte("<html>not json</html>"))
		}
	}))
	t.Cleanup(server.Close)

	client := rest.NewClient(server.URL)

	t.Run("2xx decodes into the success target", func(t *testing.T) {
		t.Parallel()

		var out userDoc

		response, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("ok").
			Success(&out).
			Execute(context.Background())
		require.NoError(t, err)
		require.NoError(t, response.Err)
		assert.True(t, response.WasSuccessful())
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, "jane@example.com", out.Email)
		assert.Same(t, &out, response.Success)
		assert.Nil(t, response.ErrorResult)
	})

	t.Run("non-2xx decodes into the error target without an envelope error", func(t *testing.T) {
		t.Parallel()

		var out errorDoc

		response, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("missing").
			ErrorOut(&out).
			Execute(context.Background())
		require.NoError(t, err)
		require.NoError(t, response.Err)
		assert.False(t, response.WasSuccessful())
		assert.Equal(t, http.StatusNotFound, response.StatusCode)
		require.Len(t, out.GeneralErrors, 1)
		assert.Equal(t, "[notFound]", out.GeneralErrors[0]["code"])
		assert.Nil(t, response.Success)
	})

	t.Run("empty body decodes nothing", func(t *testing.T) {
		t.Parallel()

		var out userDoc

		response, err := client.NewRequest().
			Method(http.MethodDelete).
			Segment("api").Segment("empty").
			Success(&out).
			Execute(context.Background())
		require.NoError(t, err)
		require.NoError(t, response.Err)
		assert.True(t, response.WasSuccessful())
		assert.Nil(t, response.Success)
	})

	t.Run("malformed body is a decode failure", func(t *testing.T) {
		t.Parallel()

		var out userDoc

		response, err := client.NewRequest().
			Method(http.MethodGet).
			Segment("api").Segment("garbage").
			Success(&out).
			Execute(context.Background())
		require.NoError(t, err)
		require.Error(t, response.Err)
		assert.ErrorIs(t, response.Err, rest.ErrDecode)
		assert.NotErrorIs(t, response.Err, rest.ErrTransport)
		assert.False(t, response.WasSuccessful())
		assert.Equal(t, http.StatusOK, response.StatusCode)
	})
}

func TestExecutePreservesRequestBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := rest.NewClient(server.URL)

	payload := map[string]interface{}{"user": map[string]interface{}{"email": "jane@example.com"}}

	response, err := client.NewRequest().
		Method(http.MethodPost).
		Segment("api").Segment("user").
		Body(rest.JSONBody(payload)).
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, response.Method)

	got, ok := response.RequestBody.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestClientDefaultHeaders(t *testing.T) {
	t.Parallel()

	var gotHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := rest.NewClient(server.URL,
		rest.WithDefaultHeader("X-FusionAuth-TenantId", "tenant-1"),
		rest.WithUserAgent("fa-test/1.0"),
	)

	_, err := client.NewAnonymousRequest().
		Method(http.MethodGet).
		Segment("api").Segment("status").
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tenant-1", gotHeaders.Get("X-FusionAuth-TenantId"))
	assert.Equal(t, "fa-test/1.0", gotHeaders.Get("User-Agent"))
}
