// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pool

import (
	"github.com/luxfi/curve/tests/e2e/commands"
	"github.com/luxfi/curve/tests/e2e/utils"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("[Pool]", func() {
	ginkgo.BeforeEach(func() {
		utils.SetupStaticHost()
	})

	ginkgo.It("prices an initialized pool at its midpoint", func() {
		out, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Curve initialized"))

		out, err = commands.Price(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Supply: 500,000"))
		gomega.Expect(out).Should(gomega.ContainSubstring("Price:  5.5"))
	})

	ginkgo.It("refuses to initialize a pool twice", func() {
		_, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil())

		_, err = commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(err.Error()).Should(gomega.ContainSubstring("already initialized"))
	})

	ginkgo.It("refuses to initialize for a caller other than the owner", func() {
		out, err := commands.Run(commands.InitCmd, utils.ActivePool,
			"--initial-price", "1", "--total-supply", "1000000", "--from", utils.Stranger)
		gomega.Expect(err).Should(gomega.HaveOccurred(), out)
		gomega.Expect(err.Error()).Should(gomega.ContainSubstring("not the owner"))
	})

	ginkgo.It("reports the last price of a transitioned pool", func() {
		_, err := commands.InitPool(utils.RetiredPool)
		gomega.Expect(err).Should(gomega.BeNil())

		out, err := commands.Price(utils.RetiredPool)
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("transitioned"))
		gomega.Expect(out).Should(gomega.ContainSubstring("7.25"))
	})

	ginkgo.It("fails for a pool the registry does not know", func() {
		_, err := commands.Price(utils.UnknownPool)
		gomega.Expect(err).Should(gomega.HaveOccurred())
	})

	ginkgo.It("quotes the same buy twice without changing state", func() {
		_, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil())

		first, err := commands.Quote("buy", utils.ActivePool, "10")
		gomega.Expect(err).Should(gomega.BeNil(), first)
		second, err := commands.Quote("buy", utils.ActivePool, "10")
		gomega.Expect(err).Should(gomega.BeNil(), second)
		gomega.Expect(second).Should(gomega.Equal(first))
	})

	ginkgo.It("prints emitted events on request", func() {
		_, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil())

		out, err := commands.Quote("buy", utils.ActivePool, "10", "--events")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("TokensPurchased"))
	})

	ginkgo.It("rejects a sell the reserve cannot cover", func() {
		_, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil())

		_, err = commands.Quote("sell", utils.ActivePool, "400000")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(err.Error()).Should(gomega.ContainSubstring("insufficient liquidity"))
	})

	ginkgo.It("lists stored curves", func() {
		_, err := commands.InitPool(utils.ActivePool)
		gomega.Expect(err).Should(gomega.BeNil())

		out := commands.MustRun(commands.InfoCmd)
		gomega.Expect(out).Should(gomega.ContainSubstring("1111"))

		out = commands.MustRun(commands.ScheduleCmd, utils.ActivePool, "--points", "3")
		gomega.Expect(out).Should(gomega.ContainSubstring("500,000"))
	})
})
