// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/onsi/gomega"
)

func ConfigSet(key, value string) string {
	output, err := Run(nil, ConfigCmd, "set", key, value)
	gomega.Expect(err).Should(gomega.BeNil(), output)
	return output
}

func ConfigGet(env map[string]string, key string, flags ...string) (string, error) {
	args := append([]string{ConfigCmd, "get", key}, flags...)
	return Run(env, args...)
}

func ConfigList() string {
	output, err := Run(nil, ConfigCmd, "list")
	gomega.Expect(err).Should(gomega.BeNil(), output)
	return output
}
