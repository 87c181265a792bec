package sia

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SiacoinExponent is the power of ten between one siacoin and one hasting
const SiacoinExponent = 24

// SiacoinPrecision is the number of hastings in one siacoin
var SiacoinPrecision = decimal.New(1, SiacoinExponent)

// unit is a named power of ten of the hasting
type unit struct {
	suffix   string
	exponent int32
}

// units is ordered from the largest to the smallest denomination
var units = []unit{
	{"TS", 36},
	{"GS", 33},
	{"MS", 30},
	{"KS", 27},
	{"SC", 24},
	{"mS", 21},
	{"uS", 18},
	{"nS", 15},
	{"pS", 12},
	{"H", 0},
}

// SiacoinsToHastings converts a decimal siacoin amount such as "1.5" into
// hastings. Amounts finer than one hasting are rejected.
func SiacoinsToHastings(siacoins string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(siacoins))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid siacoin amount %q: %w", siacoins, err)
	}
	return toHastings(amount, SiacoinExponent, siacoins)
}

// HastingsToSiacoins converts hastings into siacoins without rounding
func HastingsToSiacoins(hastings decimal.Decimal) decimal.Decimal {
	return hastings.Shift(-SiacoinExponent)
}

// FormatBalance renders hastings as a siacoin amount, e.g. "1.5 SC"
func FormatBalance(hastings decimal.Decimal) string {
	return fmt.Sprintf("%s SC", HastingsToSiacoins(hastings).String())
}

// FormatCurrency renders hastings with the largest unit that keeps the value
// at or above one, rounded to three decimal places.
func FormatCurrency(hastings decimal.Decimal) string {
	for _, u := range units {
		if hastings.Abs().GreaterThanOrEqual(decimal.New(1, u.exponent)) {
			return fmt.Sprintf("%s %s", hastings.Shift(-u.exponent).Round(3).String(), u.suffix)
		}
	}
	return fmt.Sprintf("%s H", hastings.String())
}

// ParseCurrency parses an amount with an optional unit suffix ("10SC",
// "2.5 KS", "300mS") into hastings. A bare number is a hasting amount.
func ParseCurrency(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty currency amount")
	}

	for _, u := range units {
		if !strings.HasSuffix(trimmed, u.suffix) {
			continue
		}
		number := strings.TrimSpace(strings.TrimSuffix(trimmed, u.suffix))
		if u.exponent == SiacoinExponent {
			return SiacoinsToHastings(number)
		}
		amount, err := decimal.NewFromString(number)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid currency amount %q: %w", s, err)
		}
		return toHastings(amount, u.exponent, s)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid currency amount %q: %w", s, err)
	}
	return toHastings(amount, 0, s)
}

func toHastings(amount decimal.Decimal, exponent int32, input string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative currency amount %q", input)
	}
	hastings := amount.Shift(exponent)
	if !hastings.IsInteger() {
		return decimal.Zero, fmt.Errorf("currency amount %q is not a whole number of hastings", input)
	}
	return hastings, nil
}
