// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"

	"github.com/heliost/cli/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[config]", func() {
	var home string

	ginkgo.BeforeEach(func() {
		var err error
		home, err = os.MkdirTemp("", "heliost-e2e")
		gomega.Expect(err).Should(gomega.BeNil())
		commands.SetHome(home)
	})

	ginkgo.AfterEach(func() {
		gomega.Expect(os.RemoveAll(home)).Should(gomega.Succeed())
	})

	ginkgo.It("persists values across invocations", func() {
		commands.ConfigSet("rpc-endpoint", "https://node.test")
		gomega.Expect(filepath.Join(home, ".heliost", "cli.json")).Should(gomega.BeAnExistingFile())

		out, err := commands.ConfigGet(nil, "rpc-endpoint", "--source")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("rpc-endpoint = https://node.test (source: file)"))
	})

	ginkgo.It("lets the environment override the file", func() {
		commands.ConfigSet("pool", "bonk")
		out, err := commands.ConfigGet(map[string]string{"HELIOST_POOL": "pump"}, "pool")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("pool = pump"))
	})

	ginkgo.It("lists every key", func() {
		out := commands.ConfigList()
		for _, key := range []string{
			"rpc-endpoint", "metadata-endpoint", "relay-endpoint", "generator-endpoint",
			"explorer-url", "pool", "request-timeout", "artwork-dir",
		} {
			gomega.Expect(out).Should(gomega.ContainSubstring(key))
		}
	})

	ginkgo.It("rejects unknown keys", func() {
		out, err := commands.ConfigGet(nil, "node-path")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("unknown config key"))
	})
})
