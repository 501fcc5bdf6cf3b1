// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package simulate

import (
	"github.com/luxfi/curve/tests/e2e/commands"
	"github.com/luxfi/curve/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Simulate]", func() {
	ginkgo.BeforeEach(func() {
		utils.SetupHome()
	})

	ginkgo.It("settles purchases without a configured host", func() {
		out := commands.MustRun(commands.SimulateCmd,
			"--initial-price", "1", "--total-supply", "1000000",
			"--amount", "50000", "--steps", "3")
		gomega.Expect(out).ShouldNot(gomega.BeEmpty())
	})

	ginkgo.It("requires at least one step", func() {
		_, err := commands.Run(commands.SimulateCmd,
			"--initial-price", "1", "--total-supply", "1000000",
			"--amount", "10", "--steps", "0")
		gomega.Expect(err).Should(gomega.HaveOccurred())
	})

	ginkgo.It("requires the curve flags", func() {
		_, err := commands.Run(commands.SimulateCmd, "--amount", "10")
		gomega.Expect(err).Should(gomega.HaveOccurred())
	})
})
