// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"

	"github.com/luxfi/curve/pkg/constants"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// SetupHome points the CLI at a fresh base directory for the current test.
func SetupHome() string {
	dir, err := os.MkdirTemp("", "curve-e2e-*")
	gomega.Expect(err).Should(gomega.BeNil())
	prev, had := os.LookupEnv(constants.EnvHome)
	gomega.Expect(os.Setenv(constants.EnvHome, dir)).Should(gomega.Succeed())
	ginkgo.DeferCleanup(func() {
		if had {
			_ = os.Setenv(constants.EnvHome, prev)
		} else {
			_ = os.Unsetenv(constants.EnvHome)
		}
		_ = os.RemoveAll(dir)
	})
	return dir
}

// WritePoolsFile writes the shared pools fixture into dir.
func WritePoolsFile(dir string) string {
	path := filepath.Join(dir, "pools.yaml")
	gomega.Expect(os.WriteFile(path, []byte(PoolsFixture), 0o600)).Should(gomega.Succeed())
	return path
}
