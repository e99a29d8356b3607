// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pumpfun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"
)

// ErrMissingURI is returned when the metadata host accepts the upload but
// does not hand back a metadata URI.
var ErrMissingURI = errors.New("metadata response has no metadataUri")

// MetadataRequest is the token description uploaded alongside the image.
type MetadataRequest struct {
	Image       io.Reader
	ImageName   string
	Name        string
	Symbol      string
	Description string
	Twitter     string
	Telegram    string
	Website     string
}

// TokenMetadata is the canonical metadata reference returned by the host.
type TokenMetadata struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
}

type metadataResponse struct {
	Metadata struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"metadata"`
	MetadataURI string `json:"metadataUri"`
}

// MetadataClient publishes token metadata to an IPFS-backed host.
type MetadataClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewMetadataClient creates a client for the upload endpoint.
func NewMetadataClient(endpoint string, timeout time.Duration) *MetadataClient {
	return &MetadataClient{
		endpoint:   endpoint,
		httpClient: newHTTPClient(timeout),
	}
}

// Publish uploads the image and fields in a single multipart request.
func (c *MetadataClient) Publish(ctx context.Context, req MetadataRequest) (*TokenMetadata, error) {
	if req.Image == nil {
		return nil, errors.New("metadata upload needs an image")
	}
	body, contentType, err := encodeMetadataForm(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Service: "metadata host", StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	var parsed metadataResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if parsed.MetadataURI == "" {
		return nil, ErrMissingURI
	}
	return &TokenMetadata{
		Name:   parsed.Metadata.Name,
		Symbol: parsed.Metadata.Symbol,
		URI:    parsed.MetadataURI,
	}, nil
}

func encodeMetadataForm(req MetadataRequest) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	name := filepath.Base(req.ImageName)
	if req.ImageName == "" {
		name = "image.png"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, req.Image); err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	fields := []struct{ key, value string }{
		{"name", req.Name},
		{"symbol", req.Symbol},
		{"description", req.Description},
		{"twitter", req.Twitter},
		{"telegram", req.Telegram},
		{"website", req.Website},
		{"showName", "true"},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", f.key, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
