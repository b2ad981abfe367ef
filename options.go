package rfidscan

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// ClientOptions defines the configuration for a scan client.
type ClientOptions struct {
	HTTPClient *http.Client   `validate:"required"`
	Endpoint   string         `validate:"required,http_url"`
	Logger     zerolog.Logger `validate:"-"`
}

// ClientOption configures a scan client.
type ClientOption func(*ClientOptions)

// WithHTTPClient replaces the HTTP client used for scan calls.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *ClientOptions) {
		o.HTTPClient = c
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(o *ClientOptions) {
		o.Logger = l
	}
}

// withEndpoint points the client somewhere other than Endpoint. Tests only.
func withEndpoint(url string) ClientOption {
	return func(o *ClientOptions) {
		o.Endpoint = url
	}
}

func resolveClientOptions(opts []ClientOption) (ClientOptions, error) {
	out := defaultClientOptions()
	for _, opt := range opts {
		opt(&out)
	}

	if err := validate.Struct(out); err != nil {
		return ClientOptions{}, fmt.Errorf("client options: %w", err)
	}

	return out, nil
}

func defaultClientOptions() ClientOptions {
	return ClientOptions{
		HTTPClient: &http.Client{},
		Endpoint:   Endpoint,
		Logger:     zerolog.Nop(),
	}
}
