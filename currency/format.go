package currency

import (
	"fmt"
	"math"
	"strings"

	cldr "github.com/bojanz/currency"
	"github.com/shopspring/decimal"
	textcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// SymbolPosition describes where the currency symbol is placed relative to the number.
type SymbolPosition int

const (
	// SymbolPrefix places the symbol before the number, e.g. "$2.00".
	SymbolPrefix SymbolPosition = iota
	// SymbolSuffix places the symbol after the number, e.g. "2,00 €".
	SymbolSuffix
)

// ParseSymbolPosition maps a configuration value onto a SymbolPosition.
func ParseSymbolPosition(value string) (SymbolPosition, error) {
	switch strings.ToLower(value) {
	case "prefix":
		return SymbolPrefix, nil
	case "suffix":
		return SymbolSuffix, nil
	default:
		return SymbolPrefix, fmt.Errorf("unsupported symbol position '%s'", value)
	}
}

// Formatter formats monetary amounts for a single locale and currency using the
// locale's CLDR currency pattern. A Formatter is immutable; the With* methods
// return modified copies.
type Formatter struct {
	tag    language.Tag
	locale cldr.Locale
	unit   textcurrency.Unit
	scale  int
	symbol string
	// nil follows the locale's pattern
	position *SymbolPosition
}

// NewFormatter builds a formatter for the given locale, using the currency
// of the locale's region.
func NewFormatter(tag language.Tag) (*Formatter, error) {
	region, confidence := tag.Region()
	if confidence == language.No {
		return nil, fmt.Errorf("unable to resolve a region for locale '%s'", tag)
	}

	currencyCode, hasCurrency := cldr.ForCountryCode(region.String())
	if !hasCurrency {
		return nil, fmt.Errorf("unable to resolve a currency for locale '%s'", tag)
	}

	unit, err := textcurrency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("unsupported currency '%s' for locale '%s': %w", currencyCode, tag, err)
	}

	formatter := &Formatter{
		tag:    tag,
		locale: cldr.NewLocale(tag.String()),
	}

	return formatter.withUnit(unit), nil
}

// MustNewFormatter is like NewFormatter, but panics if the locale has no currency.
func MustNewFormatter(tag language.Tag) *Formatter {
	formatter, err := NewFormatter(tag)
	if err != nil {
		panic(err)
	}

	return formatter
}

// WithCurrency returns a copy of the formatter that formats amounts in the given currency.
func (f *Formatter) WithCurrency(unit textcurrency.Unit) *Formatter {
	return f.withUnit(unit)
}

// WithSymbolPosition returns a copy of the formatter that places the symbol as given
// instead of where the locale's pattern puts it.
func (f *Formatter) WithSymbolPosition(position SymbolPosition) *Formatter {
	copied := *f
	copied.position = &position
	return &copied
}

// WithSymbol returns a copy of the formatter that uses the given symbol instead of the CLDR one.
func (f *Formatter) WithSymbol(symbol string) *Formatter {
	copied := *f
	copied.symbol = symbol
	return &copied
}

func (f *Formatter) withUnit(unit textcurrency.Unit) *Formatter {
	copied := *f
	copied.unit = unit
	copied.symbol = ""

	copied.scale = 2
	if digits, ok := cldr.GetDigits(unit.String()); ok {
		copied.scale = int(digits)
	}

	return &copied
}

// Locale is the locale the formatter renders for.
func (f *Formatter) Locale() language.Tag {
	return f.tag
}

// Currency is the currency the formatter renders.
func (f *Formatter) Currency() textcurrency.Unit {
	return f.unit
}

// Scale is the number of minor-unit digits of the currency (2 for USD, 0 for JPY).
func (f *Formatter) Scale() int {
	return f.scale
}

// Round rounds the amount to the currency's minor unit using banker's rounding.
func (f *Formatter) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundBank(int32(f.scale))
}

// Symbol is the symbol the formatter renders, such as "$" or "CHF".
func (f *Formatter) Symbol() string {
	if f.symbol != "" {
		return f.symbol
	}

	symbol, _ := cldr.GetSymbol(f.unit.String(), f.locale)
	return symbol
}

// Format renders the given amount as a currency string, such as "$1,234.50".
// The digits come from the exact decimal value, so large amounts are not altered.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := f.Round(amount)
	currencyCode := f.unit.String()

	if f.position != nil {
		digits := f.formatDigits(rounded.Abs(), currencyCode, cldr.DisplayNone)

		var formatted string
		switch *f.position {
		case SymbolSuffix:
			formatted = digits + "\u00a0" + f.Symbol()
		default:
			formatted = f.Symbol() + digits
		}

		if rounded.IsNegative() {
			return "-" + formatted
		}

		return formatted
	}

	return f.formatDigits(rounded, currencyCode, cldr.DisplaySymbol)
}

func (f *Formatter) formatDigits(amount decimal.Decimal, currencyCode string, display cldr.Display) string {
	fixed := amount.StringFixed(int32(f.scale))

	cldrAmount, err := cldr.NewAmount(fixed, currencyCode)
	if err != nil {
		// only reachable for codes CLDR does not know; fall back to the plain number
		return fixed + " " + currencyCode
	}

	formatter := cldr.NewFormatter(f.locale)
	formatter.RoundingMode = cldr.RoundHalfEven
	formatter.CurrencyDisplay = display
	if f.symbol != "" {
		formatter.SymbolMap = map[string]string{currencyCode: f.symbol}
	}

	return formatter.Format(cldrAmount)
}

// FormatFloat is a convenience wrapper around Format for binary floating-point amounts.
// Non-finite amounts are formatted as zero.
func (f *Formatter) FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	return f.Format(decimal.NewFromFloat(amount))
}
