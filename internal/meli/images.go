package meli

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	domain "github.com/mercadoflow/meli-gateway/pkg/types"
)

// ImageUploadResult wraps the marketplace's picture document.
type ImageUploadResult struct {
	Image json.RawMessage `json:"image"`
}

// UploadImage registers an image with the marketplace. The image source is
// sniffed: an http(s) URL is sent as a JSON payload, a readable local file
// path is uploaded as multipart, and anything else is treated as a raw
// base64 payload. The three shapes are mutually exclusive.
func (c *Client) UploadImage(ctx context.Context, shopID, imageData string) (*ImageUploadResult, error) {
	if imageData == "" {
		return nil, &ValidationError{Message: "image_data is required"}
	}

	cred, err := c.credentialForShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	switch {
	case strings.HasPrefix(imageData, "http"):
		raw, err = c.post(ctx, cred, "/pictures", map[string]string{"source": imageData})
	default:
		var payload []byte
		if _, statErr := os.Stat(imageData); statErr == nil {
			payload, err = os.ReadFile(imageData)
			if err != nil {
				return nil, fmt.Errorf("reading image file: %w", err)
			}
		} else {
			payload, err = base64.StdEncoding.DecodeString(imageData)
			if err != nil {
				return nil, &ValidationError{
					Message: "image_data is not a URL, a readable file path, or valid base64",
				}
			}
		}
		raw, err = c.uploadMultipart(ctx, cred, payload)
	}
	if err != nil {
		return nil, err
	}

	return &ImageUploadResult{Image: raw}, nil
}

// uploadMultipart sends the image bytes as a multipart "file" field.
func (c *Client) uploadMultipart(ctx context.Context, cred *domain.Credential, payload []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image")
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(payload); err != nil {
		return nil, fmt.Errorf("writing multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart body: %w", err)
	}

	return c.invoke(ctx, cred, apiRequest{
		method:      http.MethodPost,
		path:        "/pictures",
		raw:         buf.Bytes(),
		contentType: writer.FormDataContentType(),
	})
}
