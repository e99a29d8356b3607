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
	"net/http"
	"time"

	"github.com/heliost/cli/pkg/constants"
)

// CreateRequest is the body of a trade-local "create" action.
type CreateRequest struct {
	PublicKey        string        `json:"publicKey"`
	Action           string        `json:"action"`
	TokenMetadata    TokenMetadata `json:"tokenMetadata"`
	Mint             string        `json:"mint"`
	DenominatedInSol string        `json:"denominatedInSol"`
	Amount           float64       `json:"amount"`
	Slippage         float64       `json:"slippage"`
	PriorityFee      float64       `json:"priorityFee"`
	Pool             string        `json:"pool"`
}

// NewCreateRequest fills the fixed parts of a create request. Amount is
// denominated in SOL.
func NewCreateRequest(operator, mint string, meta TokenMetadata, amount, slippage, priorityFee float64, pool string) CreateRequest {
	if pool == "" {
		pool = constants.PumpPool
	}
	return CreateRequest{
		PublicKey:        operator,
		Action:           "create",
		TokenMetadata:    meta,
		Mint:             mint,
		DenominatedInSol: "true",
		Amount:           amount,
		Slippage:         slippage,
		PriorityFee:      priorityFee,
		Pool:             pool,
	}
}

// TradeClient asks the relay to build unsigned transactions.
type TradeClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewTradeClient creates a client for the trade-local endpoint.
func NewTradeClient(endpoint string, timeout time.Duration) *TradeClient {
	return &TradeClient{
		endpoint:   endpoint,
		httpClient: newHTTPClient(timeout),
	}
}

// BuildCreate returns the serialized unsigned transaction for req. Anything
// but 200 is a *StatusError carrying the relay's status text.
func (c *TradeClient) BuildCreate(ctx context.Context, req CreateRequest) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Service: "relay", StatusCode: resp.StatusCode, Status: statusText(resp)}
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(payload) == 0 {
		return nil, errors.New("relay returned an empty transaction")
	}
	return payload, nil
}
