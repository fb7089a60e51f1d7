package rest_test

import (
	"encoding/json"
	"net/url"
	"strconv"
	"testing"

	"github.com/fivetwenty-io/fusionauth-client/internal/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBodyFiltersTopLevelEmptyFields(t *testing.T) {
	t.Parallel()

	payload := map[string]interface{}{
		"email":         "jane@example.com",
		"firstName":     "",
		"middleName":    nil,
		"registrations": []string{},
		"data":          map[string]interface{}{},
		"active":        false,
	}

	body := rest.JSONBody(payload)

	data, err := body.Body()
	require.NoError(t, err)

	var got map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Contains(t, got, "email")
	assert.Contains(t, got, "active")
	assert.NotContains(t, got, "firstName")
	assert.NotContains(t, got, "middleName")
	assert.NotContains(t, got, "registrations")
	assert.NotContains(t, got, "data")
}

func TestJSONBodyFilterIsShallow(t *testing.T) {
	t.Parallel()

	// Empty fields below the top level must survive serialization.
	payload := map[string]interface{}{
		"user": map[string]interface{}{
			"email":      "jane@example.com",
			"middleName": "",
			"data":       map[string]interface{}{},
		},
	}

	body := rest.JSONBody(payload)

	data, err := body.Body()
	require.NoError(t, err)

	var got struct {
		User map[string]json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Contains(t, got.User, "email")
	assert.Contains(t, got.User, "middleName")
	assert.Contains(t, got.User, "data")
}

func TestJSONBodyNonObjectPassesThrough(t *testing.T) {
	t.Parallel()

	body := rest.JSONBody([]string{"a", "", "b"})

	data, err := body.Body()
	require.NoError(t, err)
	assert.JSONEq(t, `["a","","b"]`, string(data))
}

func TestJSONBodyHeaders(t *testing.T) {
	t.Parallel()

	body := rest.JSONBody(map[string]interface{}{"email": "jane@example.com"})

	data, err := body.Body()
	require.NoError(t, err)

	headers := body.Headers()
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.Equal(t, len(data), mustAtoi(t, headers["Content-Length"]))
}

func TestJSONBodyPreservesPayload(t *testing.T) {
	t.Parallel()

	payload := map[string]interface{}{"email": "jane@example.com", "middleName": ""}
	body := rest.JSONBody(payload)

	got, ok := body.Payload().(map[string]interface{})
	require.True(t, ok)
	// The original payload keeps its empty fields; only the wire bytes are
	// filtered.
	assert.Equal(t, payload, got)
}

func TestFormBody(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("grant_type", "authorization_code")
	values.Set("code", "abc 123")
	values.Set("redirect_uri", "https://app.example.com/callback")

	body := rest.FormBody(values)

	data, err := body.Body()
	require.NoError(t, err)

	decoded, err := url.ParseQuery(string(data))
	require.NoError(t, err)
	assert.Equal(t, "authorization_code", decoded.Get("grant_type"))
	assert.Equal(t, "abc 123", decoded.Get("code"))
	assert.Equal(t, "https://app.example.com/callback", decoded.Get("redirect_uri"))

	headers := body.Headers()
	assert.Equal(t, "application/x-www-form-urlencoded", headers["Content-Type"])
}

func mustAtoi(t *testing.T, s string) int {
	t.Helper()

	n, err := strconv.Atoi(s)
	require.NoError(t, err)

	return n
}
