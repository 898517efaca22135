// Package respond builds the response envelope shared by every gateway
// endpoint. Success and error payloads carry the same metaData block so
// frontend clients can branch on is_error without inspecting HTTP codes.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mercadoflow/meli-gateway/internal/meli"
)

// Meta is the metaData block attached to every response.
type Meta struct {
	IsError          bool   `json:"is_error" doc:"Whether the request failed"`
	HTTPStatus       int    `json:"http_status" doc:"HTTP status code"`
	HTTPStatusPhrase string `json:"http_status_phrase" doc:"HTTP status text"`
	Message          string `json:"message" doc:"Human-readable outcome"`
	Time             string `json:"time" doc:"Response timestamp, RFC 3339"`
}

// Pagination mirrors the upstream paging block when a listing is paged.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// OK builds the metaData block for a successful response.
func OK(message string) Meta {
	return meta(http.StatusOK, false, message)
}

// Created builds the metaData block for a 201 response.
func Created(message string) Meta {
	return meta(http.StatusCreated, false, message)
}

func meta(status int, isError bool, message string) Meta {
	return Meta{
		IsError:          isError,
		HTTPStatus:       status,
		HTTPStatusPhrase: http.StatusText(status),
		Message:          message,
		Time:             time.Now().UTC().Format(time.RFC3339),
	}
}

// ErrorEnvelope is the error body returned for failed requests. It
// implements huma.StatusError so handlers can return it directly.
type ErrorEnvelope struct {
	MetaData Meta `json:"metaData"`
	Data     any  `json:"data"`
}

// ErrorDetail is the data payload of a failed response. Only the fields
// relevant to the failure variant are set: upstream failures carry the raw
// body and status, store misses carry the resource coordinates.
type ErrorDetail struct {
	Error        string          `json:"error"`
	Details      json.RawMessage `json:"details,omitempty"`
	StatusCode   int             `json:"status_code,omitempty"`
	ResourceType string          `json:"resource_type,omitempty"`
	ResourceID   string          `json:"resource_id,omitempty"`
}

// GetStatus implements huma.StatusError.
func (e *ErrorEnvelope) GetStatus() int {
	return e.MetaData.HTTPStatus
}

// Error implements the error interface.
func (e *ErrorEnvelope) Error() string {
	return e.MetaData.Message
}

// Error maps a marketplace client error onto the envelope with the
// appropriate HTTP status. Unknown errors become 500s.
func Error(err error) huma.StatusError {
	var (
		notFound  *meli.NotFoundError
		apiErr    *meli.APIError
		valErr    *meli.ValidationError
		refresh   *meli.RefreshFailedError
		decode    *meli.DecodeError
		transport *meli.TransportError
	)

	detail := ErrorDetail{Error: err.Error()}

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
		detail.ResourceType = notFound.Resource
		detail.ResourceID = notFound.ID
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
		detail.StatusCode = apiErr.StatusCode
		detail.Details = apiErr.Details
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.As(err, &refresh):
		status = http.StatusUnauthorized
	case errors.As(err, &decode):
		status = http.StatusBadGateway
		detail.StatusCode = decode.StatusCode
	case errors.As(err, &transport):
		status = http.StatusBadGateway
	case errors.Is(err, meli.ErrDailyLimitReached):
		status = http.StatusTooManyRequests
	}

	return &ErrorEnvelope{
		MetaData: meta(status, true, err.Error()),
		Data:     detail,
	}
}
