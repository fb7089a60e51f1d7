// Package rest implements the REST invocation core shared by every
// FusionAuth API wrapper: a per-call request builder, the two request body
// handlers, and the uniform response envelope.
package rest

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Default connect and read timeouts applied when the caller does not
// override them.
const (
	DefaultConnectTimeout = 2 * time.Second
	DefaultReadTimeout    = 2 * time.Second
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// ProxyConfig describes an outbound proxy with optional basic credentials.
type ProxyConfig struct {
	URL      string
	Username string
	Password string
}

// Client holds the read-only per-client configuration shared by every
// request builder it hands out. It is set once at construction and never
// mutated afterwards.
type Client struct {
	baseURL        string
	authorization  string
	defaultHeaders http.Header
	connectTimeout time.Duration
	readTimeout    time.Duration
	tlsCert        string
	tlsKey         string
	proxy          *ProxyConfig
	userAgent      string
	logger         Logger
	debug          bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is configured.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAuthorization sets the default Authorization value attached to
// authenticated requests. FusionAuth API keys are sent without a scheme
// prefix.
func WithAuthorization(value string) Option {
	return func(c *Client) {
		c.authorization = value
	}
}

// WithDefaultHeader attaches a header to every request built by the client,
// authenticated or not.
func WithDefaultHeader(name, value string) Option {
	return func(c *Client) {
		c.defaultHeaders.Set(name, value)
	}
}

// WithTimeouts overrides the connect and read timeouts. Zero values keep
// the defaults.
func WithTimeouts(connect, read time.Duration) Option {
	return func(c *Client) {
		if connect > 0 {
			c.connectTimeout = connect
		}

		if read > 0 {
			c.readTimeout = read
		}
	}
}

// WithTLSClientCert sets a client certificate and key, applied only when
// the request URL scheme is https.
func WithTLSClientCert(certFile, keyFile string) Option {
	return func(c *Client) {
		c.tlsCert = certFile
		c.tlsKey = keyFile
	}
}

// WithProxy routes requests through the given proxy.
func WithProxy(proxy *ProxyConfig) Option {
	return func(c *Client) {
		c.proxy = proxy
	}
}

// NewClient creates a new REST core client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:        baseURL,
		defaultHeaders: http.Header{},
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// NewRequest returns a fresh builder for an authenticated request: the
// client's default Authorization value and default headers are preloaded.
// Builders are single-use; each call builds its own.
func (c *Client) NewRequest() *Builder {
	builder := c.NewAnonymousRequest()
	if c.authorization != "" {
		builder.Authorization(c.authorization)
	}

	return builder
}

// NewAnonymousRequest returns a fresh builder without an Authorization
// header. Default headers and the user agent still apply.
func (c *Client) NewAnonymousRequest() *Builder {
	builder := &Builder{
		client:  c,
		url:     c.baseURL,
		query:   url.Values{},
		headers: http.Header{},
	}

	for name, values := range c.defaultHeaders {
		for _, value := range values {
			builder.headers.Add(name, value)
		}
	}

	if c.userAgent != "" {
		builder.headers.Set("User-Agent", c.userAgent)
	}

	return builder
}

// httpClient builds the transport for a single round trip. Connections are
// not pooled: every call opens and fully closes its own transport handle.
func (c *Client) httpClient(scheme string) (*http.Client, error) {
	dialer := &net.Dialer{Timeout: c.connectTimeout}
	readTimeout := c.readTimeout

	transport := cleanhttp.DefaultTransport()
	transport.DisableKeepAlives = true
	transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}

		return &readDeadlineConn{Conn: conn, budget: readTimeout}, nil
	}

	if c.proxy != nil {
		proxyURL, err := url.Parse(c.proxy.URL)
		if err != nil {
			return nil, &ConfigurationError{Reason: "invalid proxy URL: " + err.Error()}
		}

		if c.proxy.Username != "" {
			proxyURL.User = url.UserPassword(c.proxy.Username, c.proxy.Password)
		}

		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if scheme == "https" && c.tlsCert != "" {
		cert, err := tls.LoadX509KeyPair(c.tlsCert, c.tlsKey)
		if err != nil {
			return nil, &ConfigurationError{Reason: "loading TLS client certificate: " + err.Error()}
		}

		transport.TLSClientConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return &http.Client{Transport: transport}, nil
}

// readDeadlineConn arms one absolute read deadline on first read, bounding
// the whole response read phase, headers and a possibly stalling body
// alike, with the client's read budget. A response header timeout alone
// would leave the body read unbounded.
type readDeadlineConn struct {
	net.Conn
	budget time.Duration
	once   sync.Once
}

func (c *readDeadlineConn) Read(p []byte) (int, error) {
	c.once.Do(func() {
		_ = c.Conn.SetReadDeadline(time.Now().Add(c.budget))
	})

	return c.Conn.Read(p)
}
