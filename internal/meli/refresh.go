package meli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mercadoflow/meli-gateway/internal/store"
	"github.com/mercadoflow/meli-gateway/pkg/logger"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

const defaultTokenURL = "https://api.mercadolibre.com/oauth/token" //nolint:gosec // endpoint, not a credential

// Refresher implements TokenRefresher against the MercadoLibre identity
// endpoint. Concurrent refreshes for the same owner are coalesced into a
// single upstream call; the store write is last-writer-wins.
type Refresher struct {
	store        CredentialStore
	tokenURL     string
	clientID     string
	clientSecret string
	client       *http.Client
	log          *slog.Logger

	group singleflight.Group
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithTokenURL overrides the default identity endpoint.
func WithTokenURL(u string) RefresherOption {
	return func(r *Refresher) {
		r.tokenURL = u
	}
}

// WithRefresherHTTPClient overrides the default HTTP client.
func WithRefresherHTTPClient(hc *http.Client) RefresherOption {
	return func(r *Refresher) {
		r.client = hc
	}
}

// WithRefresherLogger overrides the default logger.
func WithRefresherLogger(log *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.log = log
	}
}

// NewRefresher creates a token refresher for the given application
// credentials. The store receives every rotated token pair.
func NewRefresher(store CredentialStore, clientID, clientSecret string, opts ...RefresherOption) *Refresher {
	r := &Refresher{
		store:        store,
		tokenURL:     defaultTokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: 10 * time.Second},
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	UserID       int64  `json:"user_id"`
}

// Refresh exchanges the owner's stored refresh token for a new pair and
// persists it. No retry of its own; a failure here is terminal for the
// calling operation.
func (r *Refresher) Refresh(ctx context.Context, ownerID int64) (*domain.Credential, error) {
	v, err, _ := r.group.Do(strconv.FormatInt(ownerID, 10), func() (any, error) {
		return r.refresh(ctx, ownerID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Credential), nil
}

func (r *Refresher) refresh(ctx context.Context, ownerID int64) (*domain.Credential, error) {
	cred, err := r.store.GetByOwnerID(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{Resource: "user", ID: strconv.FormatInt(ownerID, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("loading credential: %w", err)
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {r.clientID},
		"client_secret": {r.clientSecret},
		"refresh_token": {cred.RefreshToken},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing refresh request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading refresh response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.log.Error("token refresh rejected", "user_id", ownerID, "status", resp.StatusCode)
		return nil, fmt.Errorf("refresh request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var tokens refreshResponse
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("parsing refresh response: %w", err)
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("refresh response carried no access token")
	}

	if err := r.store.UpdateTokens(ctx, ownerID, tokens.AccessToken, tokens.RefreshToken, tokens.ExpiresIn); err != nil {
		return nil, fmt.Errorf("persisting rotated tokens: %w", err)
	}

	r.log.Info("access token rotated", "user_id", ownerID, "expires_in", tokens.ExpiresIn)

	fresh := *cred
	fresh.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		fresh.RefreshToken = tokens.RefreshToken
	}
	if tokens.TokenType != "" {
		fresh.TokenType = tokens.TokenType
	}
	fresh.ExpiresIn = tokens.ExpiresIn
	fresh.UpdatedAt = time.Now()

	return &fresh, nil
}
