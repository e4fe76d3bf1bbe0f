// Package money converts between the gateway's minor-unit amounts and
// major currency units.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits renders a major-unit amount as the gateway's x100 integer string.
// Example: 100000 VND -> "10000000".
func ToMinorUnits(major int64) string {
	return decimal.NewFromInt(major).Mul(hundred).StringFixed(0)
}

// FromMinorUnits parses a gateway amount back to major units.
// Example: "10000000" -> 100000.
func FromMinorUnits(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	minor, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return minor.Div(hundred), nil
}

// Format renders a whole-unit amount with locale grouping, e.g. "100,000 VND".
func Format(amount decimal.Decimal, currency string, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%d %s", amount.Round(0).IntPart(), currency)
}
