package client

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"travel-booking/pkg/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	requestTimeout = 30 * time.Second

	// Retries apply to server faults only; 4xx replies are final.
	retryCount    = 2
	retryBaseWait = 1 * time.Second
	retryMaxWait  = 30 * time.Second

	// refreshLeeway renews the access token slightly before expiry so an
	// in-flight request never carries a token that dies mid-request.
	refreshLeeway = 30 * time.Second
)

// Client is the travel-booking API client. It owns the token pair,
// refreshes it transparently, and keeps a response cache that the booking
// operations patch optimistically.
type Client struct {
	http  *resty.Client
	cache *Cache
	log   *zap.Logger

	notifier Notifier

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// Option tweaks a Client at construction.
type Option func(*Client)

func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		cache:    NewCache(),
		log:      zap.NewNop(),
		notifier: NopNotifier{},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryBaseWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Network failures are not retried here: resty retries those
			// on its own only when a response exists, so gate on 5xx.
			return err == nil && r.StatusCode() >= http.StatusInternalServerError
		}).
		OnBeforeRequest(c.attachToken)

	return c
}

// Cache exposes the response cache, mainly for tests and custom
// invalidation from application code.
func (c *Client) Cache() *Cache {
	return c.cache
}

// SetTokens seeds the token pair, e.g. after restoring a persisted session.
func (c *Client) SetTokens(accessToken, refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = accessToken
	c.refreshToken = refreshToken
}

func (c *Client) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// attachToken puts the bearer token on every request, refreshing first when
// the access token is about to expire. Auth endpoints are skipped.
func (c *Client) attachToken(_ *resty.Client, req *resty.Request) error {
	if req.Header.Get("X-Skip-Auth") != "" {
		req.Header.Del("X-Skip-Auth")
		return nil
	}

	access, refresh := c.tokens()
	if access == "" {
		return nil
	}

	if utils.TokenExpired(access, refreshLeeway) && refresh != "" {
		if err := c.refreshSession(req.Context()); err != nil {
			c.log.Warn("Token refresh failed", zap.Error(err))
			// Let the request proceed; the server's 401 is authoritative.
		}
		access, _ = c.tokens()
	}

	req.SetAuthToken(access)
	return nil
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// decode classifies the outcome of a finished request and unmarshals the
// payload into out (when non-nil). A success reply whose body does not fit
// the expected shape is a ValidationError: the full payload is logged here,
// the user only ever sees the generic text.
func (c *Client) decode(resp *resty.Response, err error, out any) error {
	if err != nil {
		return &NetworkError{Err: err}
	}

	var env envelope
	if uerr := json.Unmarshal(resp.Body(), &env); uerr != nil {
		if resp.IsError() {
			return &ApiError{Status: resp.StatusCode(), Message: resp.Status()}
		}
		c.log.Error("Response failed envelope validation",
			zap.Int("status", resp.StatusCode()),
			zap.ByteString("body", resp.Body()),
			zap.Error(uerr))
		return &ValidationError{Fields: map[string]string{"response": uerr.Error()}}
	}

	if resp.IsError() {
		return &ApiError{
			Status:  resp.StatusCode(),
			Message: env.Message,
			Details: env.Errors,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if uerr := json.Unmarshal(env.Data, out); uerr != nil {
			c.log.Error("Response data failed validation",
				zap.Int("status", resp.StatusCode()),
				zap.ByteString("data", env.Data),
				zap.Error(uerr))
			return &ValidationError{Fields: map[string]string{"data": uerr.Error()}}
		}
	}
	return nil
}
