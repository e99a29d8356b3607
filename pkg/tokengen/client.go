// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tokengen fetches suggested token parameters from the generator
// service.
package tokengen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/heliost/cli/pkg/constants"
	"github.com/heliost/cli/pkg/launcher"
)

// Suggestion holds the public parameters the generator proposes. Key
// material in the response is never read.
type Suggestion struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// Client calls the generator endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a generator client.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.APIRequestTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Suggest asks the generator for a fresh set of parameters.
func (c *Client) Suggest(ctx context.Context) (*Suggestion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to generate token parameters: %s", resp.Status)
	}

	var s Suggestion
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &s, nil
}

// Apply copies the suggestion into p. Fields the operator fills in later
// steps are overwritten there.
func (s *Suggestion) Apply(p *launcher.Params) {
	p.Name = s.Name
	p.Symbol = s.Symbol
	p.Description = s.Description
	p.Website = s.Website
}
