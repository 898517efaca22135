package meli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/mercadoflow/meli-gateway/internal/metrics"
	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// maxAttempts bounds the attempt loop: the original call plus at most one
// replay after a token refresh. A 401 on the replay is terminal.
const maxAttempts = 2

// apiRequest describes one outbound marketplace call. Body (JSON) and raw
// (pre-encoded, e.g. multipart) are mutually exclusive.
type apiRequest struct {
	method string
	path   string
	query  url.Values
	body   any

	raw         []byte
	contentType string

	// anonymous calls skip the Authorization header and the refresh path.
	anonymous bool
}

// invoke sends one logical marketplace call on behalf of a credential.
// On the first 401 it refreshes the token and replays the identical request
// exactly once; the replay's outcome is returned regardless. Non-JSON
// bodies and transport failures are never retried.
func (c *Client) invoke(ctx context.Context, cred *domain.Credential, req apiRequest) (json.RawMessage, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		status, body, err := c.send(ctx, cred, req)
		if err != nil {
			return nil, err
		}

		if status == http.StatusUnauthorized && attempt == 0 && !req.anonymous {
			c.log.Info("access token rejected, refreshing", "user_id", cred.OwnerID, "path", req.path)
			metrics.TokenRefreshTotal.Inc()

			fresh, refreshErr := c.refresher.Refresh(ctx, cred.OwnerID)
			if refreshErr != nil || fresh == nil {
				metrics.TokenRefreshFailuresTotal.Inc()
				return nil, &RefreshFailedError{OwnerID: cred.OwnerID, Err: refreshErr}
			}

			cred = fresh
			continue
		}

		if status >= 400 {
			metrics.MeliAPIErrorsTotal.WithLabelValues(statusCategory(status)).Inc()
			return nil, newAPIError(status, body)
		}

		return json.RawMessage(body), nil
	}

	// Unreachable: every loop iteration returns or refreshes exactly once.
	return nil, fmt.Errorf("attempt budget exhausted for %s %s", req.method, req.path)
}

// send performs a single HTTP round-trip and validates the body is JSON.
func (c *Client) send(ctx context.Context, cred *domain.Credential, req apiRequest) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.MeliDailyLimitHits.Inc()
			}
			return 0, nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.MeliDailyUsage.Set(float64(c.limiter.DailyCount()))
	}

	httpReq, err := c.buildRequest(ctx, cred, req)
	if err != nil {
		return 0, nil, err
	}

	metrics.MeliAPICallsTotal.WithLabelValues(req.method).Inc()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("null")
	}
	if !json.Valid(body) {
		return 0, nil, &DecodeError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body is not valid JSON"),
		}
	}

	return resp.StatusCode, body, nil
}

func (c *Client) buildRequest(ctx context.Context, cred *domain.Credential, req apiRequest) (*http.Request, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var reader io.Reader = http.NoBody
	contentType := ""

	switch {
	case req.raw != nil:
		reader = bytes.NewReader(req.raw)
		contentType = req.contentType
	case req.body != nil:
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if !req.anonymous {
		httpReq.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	return httpReq, nil
}

// get issues an authenticated GET through the invoke primitive.
func (c *Client) get(ctx context.Context, cred *domain.Credential, path string, query url.Values) (json.RawMessage, error) {
	return c.invoke(ctx, cred, apiRequest{method: http.MethodGet, path: path, query: query})
}

// post issues an authenticated JSON POST through the invoke primitive.
func (c *Client) post(ctx context.Context, cred *domain.Credential, path string, body any) (json.RawMessage, error) {
	return c.invoke(ctx, cred, apiRequest{method: http.MethodPost, path: path, body: body})
}

// put issues an authenticated JSON PUT through the invoke primitive.
func (c *Client) put(ctx context.Context, cred *domain.Credential, path string, body any) (json.RawMessage, error) {
	return c.invoke(ctx, cred, apiRequest{method: http.MethodPut, path: path, body: body})
}
