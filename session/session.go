// Package session holds the raw inputs of a single tip calculation screen and
// recomputes the tip whenever one of them changes.
package session

import (
	"fmt"

	"github.com/jrh3k5/tiptime/currency"
	"github.com/jrh3k5/tiptime/math"
)

// Labels shown by the UI adapters.
const (
	CalculateTipLabel  = "Calculate Tip"
	BillAmountLabel    = "Bill Amount"
	TipPercentageLabel = "Tip Percentage"
	RoundUpLabel       = "Round up tip?"
)

// Session is the state of one tip calculation. It is not safe for concurrent use;
// UI adapters feed it from their single event loop.
type Session struct {
	formatter      *currency.Formatter
	billText       string
	tipPercentText string
	roundUp        bool
	tip            string
}

// New creates a session with empty inputs.
func New(formatter *currency.Formatter) *Session {
	s := &Session{formatter: formatter}
	s.recalculate()
	return s
}

// SetBillText replaces the bill amount text and returns the recalculated tip.
func (s *Session) SetBillText(text string) string {
	s.billText = text
	return s.recalculate()
}

// SetTipPercentText replaces the tip percentage text and returns the recalculated tip.
func (s *Session) SetTipPercentText(text string) string {
	s.tipPercentText = text
	return s.recalculate()
}

// SetRoundUp sets whether the tip is rounded up and returns the recalculated tip.
func (s *Session) SetRoundUp(roundUp bool) string {
	s.roundUp = roundUp
	return s.recalculate()
}

// BillText is the bill amount exactly as entered.
func (s *Session) BillText() string {
	return s.billText
}

// TipPercentText is the tip percentage exactly as entered.
func (s *Session) TipPercentText() string {
	return s.tipPercentText
}

// RoundUp reports whether the tip is rounded up to a whole currency unit.
func (s *Session) RoundUp() bool {
	return s.roundUp
}

// Tip is the formatted tip for the current inputs.
func (s *Session) Tip() string {
	return s.tip
}

// TipAmountText is the tip as displayed to the user, e.g. "Tip Amount: $2.00".
func (s *Session) TipAmountText() string {
	return FormatTipAmount(s.tip)
}

// Formatter is the currency formatter the session formats with.
func (s *Session) Formatter() *currency.Formatter {
	return s.formatter
}

func (s *Session) recalculate() string {
	s.tip = math.TipFromText(s.billText, s.tipPercentText, s.roundUp, s.formatter)
	return s.tip
}

// FormatTipAmount renders a formatted tip the way it is displayed to the user.
func FormatTipAmount(tip string) string {
	return fmt.Sprintf("Tip Amount: %s", tip)
}
