// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"bytes"

	"github.com/luxfi/curve/cmd"
	"github.com/onsi/gomega"
)

// Run executes the CLI in-process and returns what it printed to the user.
func Run(args ...string) (string, error) {
	var out bytes.Buffer
	err := cmd.Run(args, &out)
	return out.String(), err
}

// MustRun is Run for commands expected to succeed.
func MustRun(args ...string) string {
	out, err := Run(args...)
	gomega.Expect(err).Should(gomega.BeNil(), out)
	return out
}

func SetConfig(key, value string) {
	MustRun(ConfigCmd, "set", key, value)
}
