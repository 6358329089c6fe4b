package screen_test

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/text/language"

	"github.com/jrh3k5/tiptime/currency"
	"github.com/jrh3k5/tiptime/screen"
	"github.com/jrh3k5/tiptime/session"
)

func typeText(model *screen.Model, text string) {
	for _, r := range text {
		model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(model *screen.Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := model.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

var _ = Describe("Model", func() {
	var tipSession *session.Session
	var model *screen.Model

	BeforeEach(func() {
		tipSession = session.New(currency.MustNewFormatter(language.AmericanEnglish))
		model = screen.New(tipSession, "")
	})

	It("shows the labels of the screen", func() {
		view := model.View()
		Expect(view).To(ContainSubstring(session.CalculateTipLabel))
		Expect(view).To(ContainSubstring(session.BillAmountLabel))
		Expect(view).To(ContainSubstring(session.TipPercentageLabel))
		Expect(view).To(ContainSubstring(session.RoundUpLabel))
		Expect(view).To(ContainSubstring("Tip Amount: $0.00"))
	})

	It("recalculates the tip as the user types", func() {
		typeText(model, "10")
		press(model, tea.KeyTab)
		typeText(model, "2")
		Expect(model.Tip()).To(Equal("$0.20"), "the tip should be recalculated after each keystroke")

		typeText(model, "0")
		Expect(model.Tip()).To(Equal("$2.00"))
		Expect(model.View()).To(ContainSubstring("Tip Amount: $2.00"))
	})

	It("toggles rounding up", func() {
		typeText(model, "51")
		press(model, tea.KeyTab)
		typeText(model, "15")
		Expect(model.Tip()).To(Equal("$7.65"))

		press(model, tea.KeyTab)
		press(model, tea.KeySpace)
		Expect(tipSession.RoundUp()).To(BeTrue(), "space should toggle rounding up")
		Expect(model.Tip()).To(Equal("$8.00"))

		press(model, tea.KeyEnter)
		Expect(tipSession.RoundUp()).To(BeFalse(), "enter should toggle rounding up back off")
		Expect(model.Tip()).To(Equal("$7.65"))
	})

	It("moves focus backwards", func() {
		press(model, tea.KeyShiftTab)
		press(model, tea.KeySpace)
		Expect(tipSession.RoundUp()).To(BeTrue(), "shift+tab from the bill amount should wrap around to the round up toggle")
	})

	It("treats unreadable bill text as zero", func() {
		typeText(model, "abc")
		press(model, tea.KeyTab)
		typeText(model, "20")
		Expect(model.Tip()).To(Equal("$0.00"))
	})

	It("pre-fills the default tip percentage", func() {
		model = screen.New(session.New(currency.MustNewFormatter(language.AmericanEnglish)), "15")
		typeText(model, "51")
		Expect(model.Tip()).To(Equal("$7.65"), "the default tip percentage should be used")
	})

	It("quits on escape", func() {
		cmd := press(model, tea.KeyEscape)
		Expect(cmd).ToNot(BeNil(), "a quit command should be returned")
		Expect(cmd()).To(Equal(tea.QuitMsg{}))
		Expect(model.View()).To(BeEmpty(), "nothing should be drawn once quitting")
	})
})
