package qr

import (
	"context"

	"github.com/jrh3k5/tiptime/session"
)

// PlainTextGenerator just generates the tip as it is displayed to the user.
// This is useful for scanners that only show text rather than open URLs.
type PlainTextGenerator struct {
}

func NewPlainTextGenerator() *PlainTextGenerator {
	return &PlainTextGenerator{}
}

func (*PlainTextGenerator) Generate(ctx context.Context, qrDetails *Details) (string, error) {
	return session.FormatTipAmount(qrDetails.Formatted), nil
}
