// Package meli implements the MercadoLibre marketplace client: a single
// choke point for every outbound API call with transparent one-shot token
// refresh, plus the category, product, image, and size-chart operations
// built on top of it.
package meli

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mercadoflow/meli-gateway/pkg/logger"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

const (
	defaultBaseURL = "https://api.mercadolibre.com"
	defaultSiteID  = "MLM"
)

// CredentialStore resolves shops and owners to their stored marketplace
// credentials. An empty result from GetByShopID means the shop is unknown.
type CredentialStore interface {
	GetByShopID(ctx context.Context, shopID string) ([]domain.Credential, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Credential, error)
	UpdateTokens(ctx context.Context, ownerID int64, accessToken, refreshToken string, expiresIn int) error
}

// TokenRefresher exchanges a stored refresh token for a new token pair.
// A nil credential with a nil error never happens; refresh failure is an error.
type TokenRefresher interface {
	Refresh(ctx context.Context, ownerID int64) (*domain.Credential, error)
}

// Client is the marketplace API client. All operation methods resolve the
// shop's credential through the store and funnel their HTTP traffic through
// the invoke primitive, which owns the refresh-and-retry contract.
type Client struct {
	store     CredentialStore
	refresher TokenRefresher

	baseURL string
	siteID  string
	client  *http.Client
	limiter *RateLimiter
	log     *slog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the marketplace API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithSiteID overrides the default marketplace site.
func WithSiteID(site string) Option {
	return func(c *Client) {
		c.siteID = site
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimiter injects a limiter that bounds per-second and daily
// outbound call volume. When set, every invoke goes through Wait() first.
func WithRateLimiter(r *RateLimiter) Option {
	return func(c *Client) {
		c.limiter = r
	}
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a marketplace client backed by the given credential
// store and token refresher.
func NewClient(store CredentialStore, refresher TokenRefresher, opts ...Option) *Client {
	c := &Client{
		store:     store,
		refresher: refresher,
		baseURL:   defaultBaseURL,
		siteID:    defaultSiteID,
		client:    &http.Client{Timeout: 30 * time.Second},
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SiteID returns the marketplace site the client operates on.
func (c *Client) SiteID() string { return c.siteID }

// credentialForShop resolves a shop ID to its stored credential. A miss is
// a NotFoundError and no marketplace call is ever attempted for it.
func (c *Client) credentialForShop(ctx context.Context, shopID string) (*domain.Credential, error) {
	if shopID == "" {
		return nil, &ValidationError{Message: "shop_id is required"}
	}

	creds, err := c.store.GetByShopID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if len(creds) == 0 {
		c.log.Warn("no credential for shop", "shop_id", shopID)
		return nil, &NotFoundError{Resource: "user", ID: shopID}
	}

	return &creds[0], nil
}
