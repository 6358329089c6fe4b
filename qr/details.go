package qr

import (
	"github.com/shopspring/decimal"
)

// Details describes a calculated tip to be shared through a QR code.
type Details struct {
	BillText       string
	TipPercentText string
	RoundUp        bool
	// Amount is the tip, rounded to the currency's minor unit.
	Amount decimal.Decimal
	// CurrencyCode is the ISO 4217 code of the tip's currency.
	CurrencyCode string
	// Formatted is the tip as displayed to the user.
	Formatted string
}
