// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package e2e

import (
	"testing"

	"github.com/heliost/cli/tests/e2e/commands"
	_ "github.com/heliost/cli/tests/e2e/testcases/config"
	_ "github.com/heliost/cli/tests/e2e/testcases/deploy"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

func TestE2E(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "heliost e2e test suites")
}

var _ = ginkgo.BeforeSuite(func() {
	binary, err := gexec.Build("github.com/heliost/cli")
	gomega.Expect(err).Should(gomega.BeNil())
	commands.CLIBinary = binary
})

var _ = ginkgo.AfterSuite(func() {
	gexec.CleanupBuildArtifacts()
})
