package rest

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Builder accumulates a complete request description through chained calls,
// then performs exactly one HTTP round trip in Execute. Builders are
// single-use and not safe for concurrent reuse; callers build a fresh one
// per request.
type Builder struct {
	client     *Client
	url        string
	method     string
	query      url.Values
	headers    http.Header
	body       BodyHandler
	successOut interface{}
	errorOut   interface{}
}

// Method sets the HTTP method: GET, POST, PUT, PATCH, or DELETE.
func (b *Builder) Method(method string) *Builder {
	b.method = method

	return b
}

// Segment appends one path component to the accumulated URL with exactly
// one separating slash, regardless of slashes already present on either
// side. An empty value is a no-op.
func (b *Builder) Segment(value string) *Builder {
	if value == "" {
		return b
	}

	b.url = strings.TrimRight(b.url, "/") + "/" + strings.TrimLeft(value, "/")

	return b
}

// Param registers a query parameter. Nil values are skipped entirely and
// never emitted on the wire. Booleans serialize as "true"/"false". Slices
// fan out to repeated keys; repeated calls with the same name accumulate.
func (b *Builder) Param(name string, value interface{}) *Builder {
	if value == nil {
		return b
	}

	switch v := value.(type) {
	case string:
		if v != "" {
			b.query.Add(name, v)
		}
	case *string:
		if v != nil && *v != "" {
			b.query.Add(name, *v)
		}
	case bool:
		b.query.Add(name, strconv.FormatBool(v))
	case *bool:
		if v != nil {
			b.query.Add(name, strconv.FormatBool(*v))
		}
	case int:
		b.query.Add(name, strconv.Itoa(v))
	case []string:
		for _, item := range v {
			b.query.Add(name, item)
		}
	default:
		b.query.Add(name, fmt.Sprint(v))
	}

	return b
}

// Header adds a header. Repeated names accumulate.
func (b *Builder) Header(name, value string) *Builder {
	b.headers.Add(name, value)

	return b
}

// Authorization removes any existing Authorization header, then sets one
// with the given value. Re-authorizing a builder is therefore idempotent:
// at most one Authorization header is live at send time and the last call
// wins. An empty value is a no-op.
func (b *Builder) Authorization(value string) *Builder {
	if value == "" {
		return b
	}

	b.headers.Set("Authorization", value)

	return b
}

// BasicAuthorization applies the same removal-then-set discipline with a
// Basic credential. A no-op when either argument is empty.
func (b *Builder) BasicAuthorization(username, password string) *Builder {
	if username == "" || password == "" {
		return b
	}

	credential := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	b.headers.Set("Authorization", "Basic "+credential)

	return b
}

// Body installs the request body handler. Absent means no request body.
func (b *Builder) Body(handler BodyHandler) *Builder {
	b.body = handler

	return b
}

// Success installs the decode target for 2xx response bodies.
func (b *Builder) Success(out interface{}) *Builder {
	b.successOut = out

	return b
}

// ErrorOut installs the decode target for non-2xx response bodies.
func (b *Builder) ErrorOut(out interface{}) *Builder {
	b.errorOut = out

	return b
}

// Execute validates the accumulated request, performs one synchronous round
// trip, and classifies the result into the returned envelope. The returned
// error is a configuration error only, raised before any network I/O;
// transport failures, decode failures, and non-2xx statuses all come back
// inside the envelope. Nothing is retried.
func (b *Builder) Execute(ctx context.Context) (*Response, error) {
	response := &Response{Method: b.method}
	if b.body != nil {
		response.RequestBody = b.body.Payload()
	}

	if b.url == "" {
		return nil, &ConfigurationError{Reason: "request URL is required"}
	}

	parsed, err := url.Parse(b.url)
	if err != nil || parsed.Host == "" {
		return nil, &ConfigurationError{Reason: "no host specified in URL " + b.url}
	}

	if b.method == "" {
		return nil, &ConfigurationError{Reason: "HTTP method is required"}
	}

	requestURL := b.url
	if len(b.query) > 0 {
		switch {
		case strings.HasSuffix(requestURL, "?"):
			requestURL += b.query.Encode()
		case strings.Contains(requestURL, "?"):
			requestURL += "&" + b.query.Encode()
		default:
			requestURL += "?" + b.query.Encode()
		}
	}

	var bodyReader io.Reader

	if b.body != nil {
		for name, value := range b.body.Headers() {
			b.headers.Set(name, value)
		}

		data, err := b.body.Body()
		if err != nil {
			return nil, &ConfigurationError{Reason: err.Error()}
		}

		bodyReader = bytes.NewReader(data)
	}

	request, err := http.NewRequestWithContext(ctx, b.method, requestURL, bodyReader)
	if err != nil {
		return nil, &ConfigurationError{Reason: "building request: " + err.Error()}
	}

	for name, values := range b.headers {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}

	httpClient, err := b.client.httpClient(parsed.Scheme)
	if err != nil {
		return nil, err
	}

	b.logRequest(requestURL)

	raw, err := httpClient.Do(request)
	if err != nil {
		response.Err = fmt.Errorf("%w: %w", ErrTransport, err)

		return response, nil
	}

	// Release the connection on every exit path.
	defer func() {
		_ = raw.Body.Close()
	}()

	response.StatusCode = raw.StatusCode

	data, err := io.ReadAll(raw.Body)
	if err != nil {
		response.Err = fmt.Errorf("%w: reading response body: %w", ErrTransport, err)

		return response, nil
	}

	b.logResponse(raw.StatusCode, len(data))

	if len(data) == 0 {
		return response, nil
	}

	if raw.StatusCode >= 200 && raw.StatusCode <= 299 {
		response.Success, response.Err = decode(data, b.successOut)
	} else {
		response.ErrorResult, response.Err = decode(data, b.errorOut)
	}

	return response, nil
}

// decode parses a response body as UTF-8 JSON into the given target, or
// into a generic value tree when no target was installed.
func decode(data []byte, target interface{}) (interface{}, error) {
	if target == nil {
		var generic interface{}
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return generic, nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return target, nil
}

func (b *Builder) logRequest(requestURL string) {
	if !b.client.debug || b.client.logger == nil {
		return
	}

	b.client.logger.Debug("HTTP Request", map[string]interface{}{
		"method": b.method,
		"url":    requestURL,
	})
}

func (b *Builder) logResponse(status, bodyLen int) {
	if !b.client.debug || b.client.logger == nil {
		return
	}

	b.client.logger.Debug("HTTP Response", map[string]interface{}{
		"status":    status,
		"body_size": bodyLen,
	})
}
