// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package deploy

import (
	"os"
	"path/filepath"

	"github.com/heliost/cli/tests/e2e/commands"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[deploy-token]", func() {
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

	ginkgo.It("rejects networks other than solana before prompting", func() {
		out, err := commands.DeployToken(nil, "ethereum")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("Only Solana network is supported"))
		gomega.Expect(out).ShouldNot(gomega.ContainSubstring("Enter token name"))
	})

	ginkgo.It("requires a terminal for the wizard", func() {
		image := filepath.Join(home, "logo.png")
		gomega.Expect(os.WriteFile(image, []byte("not read before the prompts"), 0o600)).Should(gomega.Succeed())

		out, err := commands.DeployToken(map[string]string{"HELIOST_NON_INTERACTIVE": "1"}, "solana", "--image", image)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("deploy-token needs a terminal"))
	})

	ginkgo.It("asks for an image when no artwork can be composed", func() {
		empty := filepath.Join(home, "images")
		gomega.Expect(os.MkdirAll(empty, 0o750)).Should(gomega.Succeed())

		out, err := commands.DeployToken(nil, "solana", "--artwork-dir", empty)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("no valid images found"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Enter the path of the token image"))
	})

	ginkgo.It("creates the base and log directories", func() {
		_, _ = commands.DeployToken(nil, "ethereum")
		gomega.Expect(filepath.Join(home, ".heliost", "logs")).Should(gomega.BeADirectory())
	})
})
