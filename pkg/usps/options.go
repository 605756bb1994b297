package usps

import "github.com/bft-labs/uspsship/pkg/log"

// Option configures optional behavior of a Client.
type Option func(*options)

type options struct {
	httpClient HTTPClient
	logger     log.Logger
}

// WithHTTPClient sets the HTTP client used for API calls.
// If not provided or nil, http.DefaultClient is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets a logger for request tracing.
// If not provided or nil, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
