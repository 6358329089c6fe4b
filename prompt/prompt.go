// Package prompt runs a tip calculation as a sequence of terminal prompts.
package prompt

import (
	"fmt"
	"log/slog"

	"github.com/jrh3k5/tiptime/session"
)

// Run asks for the bill amount, tip percentage and whether to round up, feeding each
// answer into the given session, and returns the resulting formatted tip.
// defaultTipPercent pre-fills the tip percentage prompt and may be empty.
func Run(asker Asker, tipSession *session.Session, defaultTipPercent string) (string, error) {
	billText, err := asker.Ask(session.BillAmountLabel, tipSession.BillText())
	if err != nil {
		return "", fmt.Errorf("failed to ask for bill amount: %w", err)
	}
	tipSession.SetBillText(billText)

	tipPercentText := tipSession.TipPercentText()
	if tipPercentText == "" {
		tipPercentText = defaultTipPercent
	}

	tipPercentText, err = asker.Ask(session.TipPercentageLabel, tipPercentText)
	if err != nil {
		return "", fmt.Errorf("failed to ask for tip percentage: %w", err)
	}
	tipSession.SetTipPercentText(tipPercentText)

	roundUp, err := asker.Confirm(session.RoundUpLabel)
	if err != nil {
		return "", fmt.Errorf("failed to ask whether to round up: %w", err)
	}
	tip := tipSession.SetRoundUp(roundUp)

	slog.Debug("Calculated tip",
		"bill", tipSession.BillText(),
		"tip_percent", tipSession.TipPercentText(),
		"round_up", roundUp,
		"tip", tip,
	)

	return tip, nil
}
