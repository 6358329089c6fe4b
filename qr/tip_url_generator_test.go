package qr_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/jrh3k5/tiptime/qr"
)

var _ = Describe("TipURLGenerator", func() {
	var generator *qr.TipURLGenerator
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		generator = qr.NewTipURLGenerator()
	})

	Context("Generate", func() {
		It("generates a URL carrying the calculation", func() {
			details := &qr.Details{
				BillText:       "51.00",
				TipPercentText: "15",
				RoundUp:        true,
				Amount:         decimal.NewFromInt(8),
				CurrencyCode:   "USD",
				Formatted:      "$8.00",
			}

			url, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
			Expect(url).To(Equal("tiptime:tip?amount=8&bill=51.00&currency=USD&percent=15&round_up=true"), "the correct URL should be generated")
		})

		It("escapes the raw input text", func() {
			details := &qr.Details{
				BillText:     "10 & change",
				Amount:       decimal.Zero,
				CurrencyCode: "USD",
			}

			url, err := generator.Generate(ctx, details)
			Expect(err).ToNot(HaveOccurred(), "generating the URL should not fail")
			Expect(url).To(ContainSubstring("bill=10+%26+change"), "the bill text should be query-escaped")
		})

		It("requires a currency code", func() {
			_, err := generator.Generate(ctx, &qr.Details{})
			Expect(err).To(HaveOccurred(), "a URL without a currency should not be generated")
		})
	})
})
