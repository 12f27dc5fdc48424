package api

import (
	"fmt"
	"sync"
	"time"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/diogo/genchat/internal/models"
)

// DefaultTimeout bounds a single generate call.
const DefaultTimeout = 120 * time.Second

// Client is the HTTP client for the generative language API
type Client struct {
	httpClient tls_client.HttpClient
	timeout    time.Duration
	mu         sync.RWMutex // Protects model, apiKey
	baseURL    string
	model      string
	apiKey     string
	verbose    bool
}

// Ensure Client implements GenerativeClient
var _ GenerativeClient = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the model identifier used for requests
func WithModel(id string) ClientOption {
	return func(c *Client) {
		if id != "" {
			c.model = id
		}
	}
}

// WithAPIKey sets the API key sent with every request
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithVerbose enables diagnostic logging to stderr
func WithVerbose(enabled bool) ClientOption {
	return func(c *Client) {
		c.verbose = enabled
	}
}

// NewClient creates a new Client
func NewClient(opts ...ClientOption) (*Client, error) {
	client := &Client{
		baseURL: models.DefaultBaseURL,
		model:   models.DefaultModel.ID,
		timeout: DefaultTimeout,
	}

	// Apply options before the HTTP client is built so WithTimeout takes effect
	for _, opt := range opts {
		opt(client)
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(int(client.timeout / time.Second)),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithNotFollowRedirects(),
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	client.httpClient = httpClient

	return client, nil
}

// Model returns the model identifier used for requests
func (c *Client) Model() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel changes the model identifier. Takes effect on the next request.
func (c *Client) SetModel(id string) {
	if id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = id
}

// SetAPIKey replaces the API key. Takes effect on the next request.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// HasAPIKey reports whether a key is configured, without exposing it
func (c *Client) HasAPIKey() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey != ""
}

// BaseURL returns the API base URL
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}
