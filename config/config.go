package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	textcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/jrh3k5/tiptime/currency"
)

// DefaultLocale is used when neither the configuration nor the environment names a locale.
var DefaultLocale = language.AmericanEnglish

// localeEnvironmentVariables are consulted, in order, for the host's locale.
var localeEnvironmentVariables = []string{"LC_ALL", "LC_MONETARY", "LANG"}

// Config is the YAML configuration of the calculator. Unset values are nil; the Get*
// methods supply their defaults.
type Config struct {
	Locale            *string  `yaml:"locale"`
	Currency          *string  `yaml:"currency"`
	Symbol            *string  `yaml:"symbol"`
	SymbolPosition    *string  `yaml:"symbol_position"`
	DefaultTipPercent *float64 `yaml:"default_tip_percent"`
	QRCodeType        *string  `yaml:"qr_code_type"`
}

// Read reads the configuration from the given YAML file.
// An empty file name yields an empty configuration.
func Read(file string) (*Config, error) {
	config := &Config{}
	if file == "" {
		return config, nil
	}

	fileBytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file '%s': %w", file, err)
	}

	if err := yaml.Unmarshal(fileBytes, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML in file '%s': %w", file, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in file '%s': %w", file, err)
	}

	return config, nil
}

// Validate checks that every value that is set can be used.
func (c *Config) Validate() error {
	if c.Locale != nil {
		if _, err := ParseLocale(*c.Locale); err != nil {
			return err
		}
	}

	if c.Currency != nil {
		if _, err := textcurrency.ParseISO(*c.Currency); err != nil {
			return fmt.Errorf("invalid currency code '%s': %w", *c.Currency, err)
		}
	}

	if c.SymbolPosition != nil {
		if _, err := currency.ParseSymbolPosition(*c.SymbolPosition); err != nil {
			return err
		}
	}

	if c.DefaultTipPercent != nil && *c.DefaultTipPercent < 0 {
		return fmt.Errorf("default tip percent must not be negative, but was %v", *c.DefaultTipPercent)
	}

	return nil
}

// GetDefaultTipPercent returns the tip percentage to pre-fill in interactive prompts.
// It is empty when none is configured.
func (c *Config) GetDefaultTipPercent() string {
	if c.DefaultTipPercent == nil {
		return ""
	}

	return strconv.FormatFloat(*c.DefaultTipPercent, 'f', -1, 64)
}

// GetQRCodeType returns the kind of QR code to print, "tiptime" unless configured.
func (c *Config) GetQRCodeType() string {
	if c.QRCodeType == nil {
		return "tiptime"
	}

	return *c.QRCodeType
}

// GetLocale resolves the locale to format with: the configured one, then the host's
// locale as described by the environment, then DefaultLocale.
func (c *Config) GetLocale(lookupEnv func(string) (string, bool)) (language.Tag, error) {
	if c.Locale != nil {
		return ParseLocale(*c.Locale)
	}

	for _, variable := range localeEnvironmentVariables {
		value, isSet := lookupEnv(variable)
		if !isSet || value == "" {
			continue
		}

		tag, err := ParseLocale(value)
		if err != nil {
			// "C" and "POSIX" carry no region, so keep looking
			continue
		}

		return tag, nil
	}

	return DefaultLocale, nil
}

// NewFormatter builds the currency formatter described by this configuration.
// A host locale without a currency falls back to DefaultLocale; a configured one is an error.
func (c *Config) NewFormatter(lookupEnv func(string) (string, bool)) (*currency.Formatter, error) {
	tag, err := c.GetLocale(lookupEnv)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve locale: %w", err)
	}

	formatter, err := currency.NewFormatter(tag)
	if err != nil && c.Locale == nil {
		slog.Warn("Host locale has no currency; falling back to the default locale", "locale", tag.String(), "default", DefaultLocale.String(), "error", err)
		formatter, err = currency.NewFormatter(DefaultLocale)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter for locale '%s': %w", tag, err)
	}

	if c.Currency != nil {
		unit, err := textcurrency.ParseISO(*c.Currency)
		if err != nil {
			return nil, fmt.Errorf("invalid currency code '%s': %w", *c.Currency, err)
		}
		formatter = formatter.WithCurrency(unit)
	}

	if c.Symbol != nil {
		formatter = formatter.WithSymbol(*c.Symbol)
	}

	if c.SymbolPosition != nil {
		position, err := currency.ParseSymbolPosition(*c.SymbolPosition)
		if err != nil {
			return nil, err
		}
		formatter = formatter.WithSymbolPosition(position)
	}

	return formatter, nil
}

// ParseLocale parses a BCP 47 tag ("en-US") or a POSIX locale name ("en_US.UTF-8").
func ParseLocale(value string) (language.Tag, error) {
	normalized := value
	if dotIndex := strings.IndexAny(normalized, ".@"); dotIndex >= 0 {
		normalized = normalized[:dotIndex]
	}
	normalized = strings.ReplaceAll(normalized, "_", "-")

	if normalized == "" || normalized == "C" || normalized == "POSIX" {
		return language.Und, fmt.Errorf("locale '%s' does not describe a language", value)
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, fmt.Errorf("failed to parse locale '%s': %w", value, err)
	}

	return tag, nil
}
