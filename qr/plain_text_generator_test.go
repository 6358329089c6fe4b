package qr_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jrh3k5/tiptime/qr"
)

var _ = Describe("PlainTextGenerator", func() {
	var generator *qr.PlainTextGenerator
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		generator = qr.NewPlainTextGenerator()
	})

	Context("Generate", func() {
		It("returns the tip as displayed", func() {
			url, err := generator.Generate(ctx, &qr.Details{Formatted: "$2.00"})
			Expect(err).ToNot(HaveOccurred(), "generating the text should not fail")
			Expect(url).To(Equal("Tip Amount: $2.00"))
		})
	})
})

var _ = Describe("NewURLGenerator", func() {
	It("resolves the known generators", func() {
		generator, ok := qr.NewURLGenerator("tiptime")
		Expect(ok).To(BeTrue(), "tiptime should be a known generator")
		Expect(generator).To(BeAssignableToTypeOf(&qr.TipURLGenerator{}))

		generator, ok = qr.NewURLGenerator("text")
		Expect(ok).To(BeTrue(), "text should be a known generator")
		Expect(generator).To(BeAssignableToTypeOf(&qr.PlainTextGenerator{}))
	})

	It("defaults to the tiptime generator", func() {
		generator, ok := qr.NewURLGenerator("")
		Expect(ok).To(BeTrue(), "an empty type should resolve")
		Expect(generator).To(BeAssignableToTypeOf(&qr.TipURLGenerator{}))
	})

	It("rejects unknown generators", func() {
		_, ok := qr.NewURLGenerator("erc681")
		Expect(ok).To(BeFalse(), "an unknown type should not resolve")
	})
})
