package math

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jrh3k5/tiptime/currency"
)

var oneHundred = decimal.NewFromInt(100)

// CalculateTip calculates the tip for the given bill amount and tip percentage,
// formatted as currency by the given formatter. If roundUp is set, the tip is
// rounded up to the next whole currency unit before it is formatted.
//
// Non-finite inputs are treated as zero, so this always produces a result.
func CalculateTip(amount float64, tipPercent float64, roundUp bool, formatter *currency.Formatter) string {
	return formatter.Format(CalculateTipAmount(amount, tipPercent, roundUp))
}

// CalculateTipAmount returns the unformatted tip, computed in fixed-point decimal.
// The result is not rounded to the currency's minor unit; that is left to the formatter.
func CalculateTipAmount(amount float64, tipPercent float64, roundUp bool) decimal.Decimal {
	tip := toDecimal(tipPercent).Div(oneHundred).Mul(toDecimal(amount))
	if roundUp {
		tip = tip.Ceil()
	}

	return tip
}

func toDecimal(value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero
	}

	return decimal.NewFromFloat(value)
}
