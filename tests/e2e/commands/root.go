// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"os"
	"os/exec"
	"strings"

	"github.com/onsi/gomega"
)

var homeDir string

// SetHome isolates every following invocation in dir, so ~/.heliost never
// touches the real home directory.
func SetHome(dir string) {
	homeDir = dir
}

// Run executes the CLI with args and extra environment, returning the
// combined output. Stdin is never a terminal here.
func Run(env map[string]string, args ...string) (string, error) {
	/* #nosec G204 */
	cmd := exec.Command(CLIBinary, args...)
	cmd.Env = append(os.Environ(), "HOME="+homeDir)
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.Stdin = strings.NewReader("")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func GetVersion() string {
	output, err := Run(nil, "--version")
	gomega.Expect(err).Should(gomega.BeNil())
	return output
}
