package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mdp/qrterminal"

	"github.com/jrh3k5/tiptime/config"
	"github.com/jrh3k5/tiptime/logging"
	"github.com/jrh3k5/tiptime/math"
	"github.com/jrh3k5/tiptime/prompt"
	"github.com/jrh3k5/tiptime/qr"
	"github.com/jrh3k5/tiptime/screen"
	"github.com/jrh3k5/tiptime/session"
)

func main() {
	logging.Setup()

	ctx := context.Background()

	var file string
	flag.StringVar(&file, "file", "", "the location of the file to be read in as configuration")

	var locale string
	flag.StringVar(&locale, "locale", "", "the locale to format the tip for (e.g. en-US); defaults to the host's locale")

	var currencyCode string
	flag.StringVar(&currencyCode, "currency", "", "an ISO 4217 currency code to format the tip in, instead of the locale's currency")

	var bill string
	flag.StringVar(&bill, "bill", "", "the bill amount; when given, the tip is calculated once and printed")

	var tipPercent string
	flag.StringVar(&tipPercent, "percent", "", "the tip percentage to use with -bill")

	var roundUp bool
	flag.BoolVar(&roundUp, "round-up", false, "round the tip up to the next whole currency unit")

	var strict bool
	flag.BoolVar(&strict, "strict", false, "fail on a -bill or -percent that is not a number instead of treating it as zero")

	var usePrompt bool
	flag.BoolVar(&usePrompt, "prompt", false, "ask for each value in turn instead of showing the live screen")

	var showQR bool
	flag.BoolVar(&showQR, "qr", false, "print a QR code of the calculated tip")

	flag.Parse()

	oneShot := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "bill" {
			oneShot = true
		}
	})

	cfg, err := config.Read(file)
	if err != nil {
		fatal("Failed to read configuration", err)
	}

	if locale != "" {
		cfg.Locale = &locale
	}
	if currencyCode != "" {
		cfg.Currency = &currencyCode
	}
	if err := cfg.Validate(); err != nil {
		fatal("Invalid settings", err)
	}

	formatter, err := cfg.NewFormatter(os.LookupEnv)
	if err != nil {
		fatal("Failed to create currency formatter", err)
	}
	slog.Debug("Formatting tips", "locale", formatter.Locale().String(), "currency", formatter.Currency().String())

	tipSession := session.New(formatter)

	switch {
	case oneShot:
		err = calculateOnce(tipSession, bill, tipPercent, roundUp, strict)
	case usePrompt:
		_, err = prompt.Run(prompt.NewPromptUIAsker(), tipSession, cfg.GetDefaultTipPercent())
	default:
		_, err = screen.Run(tipSession, cfg.GetDefaultTipPercent())
	}
	if err != nil {
		fatal("Failed to calculate tip", err)
	}

	fmt.Println(tipSession.TipAmountText())

	if !showQR {
		return
	}

	qrCodeType := cfg.GetQRCodeType()
	urlGenerator, isKnown := qr.NewURLGenerator(qrCodeType)
	if !isKnown {
		fatal("Failed to generate QR code", fmt.Errorf("unsupported QR code type: %s", qrCodeType))
	}

	tipAmount := math.CalculateTipAmount(math.ParseAmount(tipSession.BillText()), math.ParseAmount(tipSession.TipPercentText()), tipSession.RoundUp())
	qrDetails := &qr.Details{
		BillText:       tipSession.BillText(),
		TipPercentText: tipSession.TipPercentText(),
		RoundUp:        tipSession.RoundUp(),
		Amount:         formatter.Round(tipAmount),
		CurrencyCode:   formatter.Currency().String(),
		Formatted:      tipSession.Tip(),
	}

	url, err := urlGenerator.Generate(ctx, qrDetails)
	if err != nil {
		fatal("Failed to generate QR code URL", err)
	}

	qrterminal.Generate(url, qrterminal.M, os.Stdout)
}

func calculateOnce(tipSession *session.Session, bill string, tipPercent string, roundUp bool, strict bool) error {
	if strict {
		if _, err := math.ParseAmountStrict(bill); err != nil {
			return fmt.Errorf("invalid bill amount: %w", err)
		}

		if _, err := math.ParseAmountStrict(tipPercent); err != nil {
			return fmt.Errorf("invalid tip percentage: %w", err)
		}
	}

	tipSession.SetBillText(bill)
	tipSession.SetTipPercentText(tipPercent)
	tipSession.SetRoundUp(roundUp)

	return nil
}

func fatal(message string, err error) {
	slog.Error(message, "error", err)
	os.Exit(1)
}
