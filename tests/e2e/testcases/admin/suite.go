// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package admin

import (
	"github.com/luxfi/curve/tests/e2e/commands"
	"github.com/luxfi/curve/tests/e2e/utils"
	"github.com/luxfi/geth/common"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Admin]", func() {
	ginkgo.BeforeEach(func() {
		utils.SetupStaticHost()
	})

	ginkgo.It("shows the configured owner and manager", func() {
		out := commands.MustRun(commands.OwnerCmd)
		gomega.Expect(out).Should(gomega.ContainSubstring(common.HexToAddress(utils.Owner).Hex()))
		gomega.Expect(out).Should(gomega.ContainSubstring(common.HexToAddress(utils.Manager).Hex()))
	})

	ginkgo.It("only lets the owner transfer ownership", func() {
		_, err := commands.Run(commands.TransferOwnershipCmd, utils.Stranger, "--from", utils.Stranger)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(err.Error()).Should(gomega.ContainSubstring("not the owner"))

		commands.MustRun(commands.TransferOwnershipCmd, utils.Stranger)

		// the stored owner now outranks the configured one
		out := commands.MustRun(commands.OwnerCmd)
		gomega.Expect(out).Should(gomega.ContainSubstring(common.HexToAddress(utils.Stranger).Hex()))

		_, err = commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		commands.MustRun(commands.InitCmd, utils.ActivePool,
			"--initial-price", "1", "--total-supply", "1000000", "--from", utils.Stranger)
	})
})
