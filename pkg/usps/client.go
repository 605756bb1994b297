package usps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/bft-labs/uspsship/pkg/log"
	"github.com/bft-labs/uspsship/pkg/xmlmap"
)

// DefaultBaseURL is the USPS Web Tools endpoint shared by all APIs.
const DefaultBaseURL = "https://secure.shippingapis.com/ShippingAPI.dll"

// requestIDHeader carries a per-call id so log lines can be matched to
// proxy or gateway logs.
const requestIDHeader = "X-Request-ID"

// Config holds the client configuration. It is copied by New and never
// changes afterwards.
type Config struct {
	// UserID is the Web Tools user id sent as the USERID attribute.
	UserID string

	// Test selects the Certify API variants and pretty-prints request XML.
	Test bool

	// BaseURL overrides DefaultBaseURL.
	BaseURL string
}

// SetDefaults fills in zero-valued fields.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidConfig)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid base url %q", ErrInvalidConfig, c.BaseURL)
	}
	return nil
}

// Client sends requests to the USPS Web Tools API.
// A Client is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient HTTPClient
	logger     log.Logger
}

// New creates a Client. It returns an error wrapping ErrInvalidConfig if the
// configuration is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		httpClient: http.DefaultClient,
		logger:     log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		cfg:        cfg,
		httpClient: o.httpClient,
		logger:     o.logger,
	}, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// Envelope returns the values request builders need from the client.
func (c *Client) Envelope() Envelope {
	return Envelope{UserID: c.cfg.UserID, Test: c.cfg.Test}
}

// SendRequest serializes doc, sends it to the API selected by action and
// returns the decoded reply. A reply whose root element is <Error> is
// returned as an *APIError, even when it arrives with a non-2xx status.
// Any other non-2xx reply is returned as an *HTTPError.
//
// Transport failures and malformed replies are returned wrapped, so
// errors.Is and errors.As still reach the underlying cause.
func (c *Client) SendRequest(ctx context.Context, action Action, doc *etree.Document) (*xmlmap.Value, error) {
	api, err := apiName(action, c.cfg.Test)
	if err != nil {
		return nil, err
	}

	payload, err := c.serialize(doc)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("API", api)
	query.Set("XML", payload)
	reqURL := c.cfg.BaseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	c.logger.Debug("sending request",
		log.String("action", string(action)),
		log.String("api", api),
		log.String("request_id", requestID),
	)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		// An <Error> body still carries the service's reason.
		if result, derr := xmlmap.DecodeBytes(body); derr == nil {
			if err := CheckResponse(result); err != nil {
				c.logger.Debug("service returned error",
					log.String("request_id", requestID),
					log.Int("status", resp.StatusCode),
					log.Err(err),
				)
				return nil, err
			}
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	result, err := xmlmap.DecodeBytes(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if err := CheckResponse(result); err != nil {
		c.logger.Debug("service returned error",
			log.String("request_id", requestID),
			log.Err(err),
		)
		return nil, err
	}

	c.logger.Debug("request completed",
		log.String("request_id", requestID),
		log.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// Do builds req, sends it and returns the decoded reply.
func (c *Client) Do(ctx context.Context, req Request) (*xmlmap.Value, error) {
	doc, err := req.Build(c.Envelope())
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", req.Action(), err)
	}
	return c.SendRequest(ctx, req.Action(), doc)
}

// ValidateAddress asks the Verify API to validate and standardize addr.
func (c *Client) ValidateAddress(ctx context.Context, addr Address) (*xmlmap.Value, error) {
	return c.Do(ctx, AddressValidation{Address: addr})
}

// Track returns tracking details for a package.
func (c *Client) Track(ctx context.Context, trackingNumber string) (*xmlmap.Value, error) {
	return c.Do(ctx, Tracking{Number: trackingNumber})
}

// CreateShipment requests a shipping label.
func (c *Client) CreateShipment(ctx context.Context, label ShippingLabel) (*xmlmap.Value, error) {
	return c.Do(ctx, label)
}

// serialize renders doc as text. Test mode indents a copy so the caller's
// document is left untouched.
func (c *Client) serialize(doc *etree.Document) (string, error) {
	if doc == nil || doc.Root() == nil {
		return "", fmt.Errorf("%w: document has no root element", ErrInvalidRequest)
	}
	if c.cfg.Test {
		doc = doc.Copy()
		doc.Indent(2)
	}
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serialize request: %w", err)
	}
	return s, nil
}
