// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pumpfun talks to the two off-chain services a pump.fun launch
// needs: the metadata host and the PumpPortal transaction relay.
package pumpfun

import (
	"fmt"
	"net/http"
	"time"

	"github.com/heliost/cli/pkg/constants"
)

// StatusError is returned when a service answers with an unexpected status.
type StatusError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %s", e.Service, e.Status)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.APIRequestTimeout
	}
	return &http.Client{
		Timeout: timeout,
	}
}

// statusText mirrors what a browser exposes as statusText: the reason phrase
// without the numeric code.
func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
