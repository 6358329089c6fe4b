package session_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/jrh3k5/tiptime/currency"
	"github.com/jrh3k5/tiptime/session"
)

var _ = Describe("Session", func() {
	var tipSession *session.Session

	BeforeEach(func() {
		tipSession = session.New(currency.MustNewFormatter(language.AmericanEnglish))
	})

	It("starts with a zero tip", func() {
		Expect(tipSession.Tip()).To(Equal("$0.00"))
		Expect(tipSession.TipAmountText()).To(Equal("Tip Amount: $0.00"))
	})

	It("recalculates the tip on every change", func() {
		Expect(tipSession.SetBillText("5")).To(Equal("$0.00"), "there is no tip without a percentage")
		Expect(tipSession.SetBillText("51")).To(Equal("$0.00"))
		Expect(tipSession.SetTipPercentText("1")).To(Equal("$0.51"))
		Expect(tipSession.SetTipPercentText("15")).To(Equal("$7.65"))
		Expect(tipSession.SetRoundUp(true)).To(Equal("$8.00"))
		Expect(tipSession.SetRoundUp(false)).To(Equal("$7.65"))
		Expect(tipSession.Tip()).To(Equal("$7.65"), "the latest tip should be retained")
	})

	It("keeps the raw text as entered", func() {
		tipSession.SetBillText("12.")
		tipSession.SetTipPercentText("abc")

		Expect(tipSession.BillText()).To(Equal("12."))
		Expect(tipSession.TipPercentText()).To(Equal("abc"))
		Expect(tipSession.Tip()).To(Equal("$0.00"), "unreadable percentage text should be treated as zero")
	})

	It("treats a cleared bill amount as zero", func() {
		tipSession.SetTipPercentText("20")
		tipSession.SetBillText("10")
		Expect(tipSession.Tip()).To(Equal("$2.00"))

		Expect(tipSession.SetBillText("")).To(Equal("$0.00"))
	})
})
