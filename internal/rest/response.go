package rest

import "errors"

// Classification sentinels for envelope errors. Transport failures and
// malformed response bodies are distinct kinds; callers branch with
// errors.Is.
var (
	// ErrTransport marks a network-level failure: DNS, connect timeout,
	// TLS negotiation, read timeout. No well-formed HTTP response was
	// obtained.
	ErrTransport = errors.New("transport failure")

	// ErrDecode marks a response body that was present but not valid JSON.
	// The HTTP exchange itself succeeded.
	ErrDecode = errors.New("decoding response body")
)

// ConfigurationError reports a request that could not be attempted: missing
// or hostless URL, missing method, unloadable TLS material. It is returned
// from Execute before any network I/O, never carried in the envelope.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid request configuration: " + e.Reason
}

// Response is the uniform envelope returned from every executed request.
// It is constructed fresh per invocation and immutable once returned.
type Response struct {
	// RequestBody is the original structured payload supplied by the
	// caller, verbatim, or nil when the request carried no body.
	RequestBody interface{}

	// Method is the HTTP method used.
	Method string

	// StatusCode is the HTTP status code, or 0 when the call failed before
	// a response was obtained.
	StatusCode int

	// Success holds the decoded body for 2xx responses with a non-empty
	// body. It points at the target installed via Builder.Success, or at a
	// generic map when no target was given.
	Success interface{}

	// ErrorResult holds the decoded body for non-2xx responses with a
	// non-empty body.
	ErrorResult interface{}

	// Err carries a transport or decode failure, wrapped around
	// ErrTransport or ErrDecode respectively. A non-2xx status alone does
	// not set it.
	Err error
}

// WasSuccessful reports whether the status is in [200,299] and no transport
// or decode failure occurred. It is the single gate callers check before
// touching Success.
func (r *Response) WasSuccessful() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode <= 299
}
