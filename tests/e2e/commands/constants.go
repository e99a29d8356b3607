// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

const (
	DeployTokenCmd = "deploy-token"
	ConfigCmd      = "config"
)

// CLIBinary is the heliost binary under test, set once the suite has built it.
var CLIBinary = "./bin/heliost"
