// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

// DeployToken runs deploy-token against network with extra flags.
func DeployToken(env map[string]string, network string, flags ...string) (string, error) {
	args := append([]string{DeployTokenCmd, "--network", network}, flags...)
	return Run(env, args...)
}
