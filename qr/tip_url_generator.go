package qr

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TipURLGenerator generates tiptime: URIs that carry the inputs and result of
// a tip calculation, so another device can reproduce it.
type TipURLGenerator struct {
}

func NewTipURLGenerator() *TipURLGenerator {
	return &TipURLGenerator{}
}

func (*TipURLGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	if qrDetails.CurrencyCode == "" {
		return "", fmt.Errorf("a currency code is required to generate a tip URL")
	}

	query := url.Values{}
	query.Set("bill", qrDetails.BillText)
	query.Set("percent", qrDetails.TipPercentText)
	query.Set("round_up", strconv.FormatBool(qrDetails.RoundUp))
	query.Set("amount", qrDetails.Amount.String())
	query.Set("currency", qrDetails.CurrencyCode)

	tipURL := url.URL{
		Scheme:   "tiptime",
		Opaque:   "tip",
		RawQuery: query.Encode(),
	}

	return tipURL.String(), nil
}
