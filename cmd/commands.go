// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// DeployTokenCmd is the deploy-token command name
	DeployTokenCmd = "deploy-token"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
