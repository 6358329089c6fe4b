package math

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jrh3k5/tiptime/currency"
)

// ParseError describes user-entered text that could not be read as a number.
type ParseError struct {
	Text string
	Err  error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number: %v", p.Text, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// ParseAmount reads the given text as a decimal number.
// Text that cannot be read, including empty text, is treated as zero.
func ParseAmount(text string) float64 {
	parsed, err := ParseAmountStrict(text)
	if err != nil {
		return 0
	}

	return parsed
}

// ParseAmountStrict reads the given text as a decimal number, returning a *ParseError
// if the text is empty or is not a finite number.
func ParseAmountStrict(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, &ParseError{Text: text, Err: fmt.Errorf("no number was entered")}
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}

	value := parsed.InexactFloat64()
	// exponents can push the value outside of what a float64 can hold
	if math.IsInf(value, 0) {
		return 0, &ParseError{Text: text, Err: fmt.Errorf("number is out of range")}
	}

	return value, nil
}

// TipFromText parses the raw bill amount and tip percentage text as entered by
// the user and calculates the formatted tip. Unreadable text is treated as zero.
func TipFromText(billText string, tipPercentText string, roundUp bool, formatter *currency.Formatter) string {
	return CalculateTip(ParseAmount(billText), ParseAmount(tipPercentText), roundUp, formatter)
}
