package qr

import "context"

// URLGenerator is used to generate a URL for a QR code.
type URLGenerator interface {
	// Generate generates a URL to be presented for a QR code
	Generate(ctx context.Context, qrDetails *Details) (string, error)
}

// NewURLGenerator resolves a generator by its configured name.
func NewURLGenerator(codeType string) (URLGenerator, bool) {
	switch codeType {
	case "", "tiptime":
		return NewTipURLGenerator(), true
	case "text":
		return NewPlainTextGenerator(), true
	default:
		return nil, false
	}
}
