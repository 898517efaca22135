package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoflow/meli-gateway/internal/api/respond"
	"github.com/mercadoflow/meli-gateway/internal/meli"
)

func TestOK(t *testing.T) {
	t.Parallel()

	m := respond.OK("categories retrieved")

	assert.False(t, m.IsError)
	assert.Equal(t, http.StatusOK, m.HTTPStatus)
	assert.Equal(t, "OK", m.HTTPStatusPhrase)
	assert.Equal(t, "categories retrieved", m.Message)

	_, err := time.Parse(time.RFC3339, m.Time)
	assert.NoError(t, err)
}

func TestCreated(t *testing.T) {
	t.Parallel()

	m := respond.Created("product created")

	assert.False(t, m.IsError)
	assert.Equal(t, http.StatusCreated, m.HTTPStatus)
	assert.Equal(t, "Created", m.HTTPStatusPhrase)
}

func TestError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing credential maps to 404",
			err:        &meli.NotFoundError{Resource: "user", ID: "126526290"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "upstream status passes through",
			err:        &meli.APIError{StatusCode: http.StatusForbidden, Category: "forbidden"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "upstream 422 passes through",
			err:        &meli.APIError{StatusCode: http.StatusUnprocessableEntity, Category: "validation error"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "validation error maps to 400",
			err:        &meli.ValidationError{Message: "image is required"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "refresh failure maps to 401",
			err:        &meli.RefreshFailedError{OwnerID: 42},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "decode error maps to 502",
			err:        &meli.DecodeError{StatusCode: 200, Err: errors.New("unexpected end of JSON input")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "transport error maps to 502",
			err:        &meli.TransportError{Err: errors.New("connection refused")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "daily limit maps to 429",
			err:        fmt.Errorf("%w (10000/10000)", meli.ErrDailyLimitReached),
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "wrapped errors unwrap",
			err:        fmt.Errorf("fetching chart: %w", &meli.NotFoundError{Resource: "user", ID: "7"}),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			se := respond.Error(tt.err)
			assert.Equal(t, tt.wantStatus, se.GetStatus())

			env, ok := se.(*respond.ErrorEnvelope)
			require.True(t, ok)
			assert.True(t, env.MetaData.IsError)
			assert.Equal(t, tt.wantStatus, env.MetaData.HTTPStatus)
			assert.Equal(t, http.StatusText(tt.wantStatus), env.MetaData.HTTPStatusPhrase)
			assert.Equal(t, tt.err.Error(), env.MetaData.Message)
			assert.Equal(t, tt.err.Error(), env.Error())

			detail, ok := env.Data.(respond.ErrorDetail)
			require.True(t, ok)
			assert.Equal(t, tt.err.Error(), detail.Error)
		})
	}
}

func TestError_APIErrorPreservesUpstreamBody(t *testing.T) {
	t.Parallel()

	rawBody := json.RawMessage(`{"message":"title too short","error":"validation_error","cause":[{"code":"item.title.invalid"}]}`)
	se := respond.Error(&meli.APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Category:   "validation error",
		Message:    "title too short",
		Details:    rawBody,
	})

	env, ok := se.(*respond.ErrorEnvelope)
	require.True(t, ok)
	detail, ok := env.Data.(respond.ErrorDetail)
	require.True(t, ok)

	assert.Equal(t, http.StatusUnprocessableEntity, detail.StatusCode)
	assert.JSONEq(t, string(rawBody), string(detail.Details))

	// The whole envelope must serialize with the upstream cause intact.
	encoded, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"item.title.invalid"`)
	assert.Contains(t, string(encoded), `"status_code":422`)
}

func TestError_NotFoundCarriesResourceCoordinates(t *testing.T) {
	t.Parallel()

	se := respond.Error(&meli.NotFoundError{Resource: "user", ID: "126526290"})

	env, ok := se.(*respond.ErrorEnvelope)
	require.True(t, ok)
	detail, ok := env.Data.(respond.ErrorDetail)
	require.True(t, ok)

	assert.Equal(t, "user", detail.ResourceType)
	assert.Equal(t, "126526290", detail.ResourceID)
	assert.Empty(t, detail.Details)
	assert.Zero(t, detail.StatusCode)
}

func TestError_DecodeErrorCarriesUpstreamStatus(t *testing.T) {
	t.Parallel()

	se := respond.Error(&meli.DecodeError{StatusCode: 503, Err: errors.New("body is not valid JSON")})

	env, ok := se.(*respond.ErrorEnvelope)
	require.True(t, ok)
	detail, ok := env.Data.(respond.ErrorDetail)
	require.True(t, ok)

	assert.Equal(t, 503, detail.StatusCode)
	assert.Empty(t, detail.Details)
}
