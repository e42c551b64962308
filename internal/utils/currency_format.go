package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatWithPrecision formats an amount with the given precision
// Example: 1234567.891 with precision 2 returns "1,234,567.89"
// Digits come from the decimal itself, so large amounts keep their cents.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	rounded := amount.Round(int32(precision))
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(precision)), ".")

	out := groupDigits(intPart)
	if frac != "" {
		out += "." + frac
	}
	if rounded.IsNegative() {
		return "-" + out
	}
	return out
}

// groupDigits inserts thousands separators into a run of ASCII digits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return amountPrinter.Sprintf("%d", n)
	}
	// beyond int64: group by hand
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatWithSymbol prefixes a two-decimal grouped amount with a currency symbol.
// Negative amounts keep the sign in front of the symbol: "-US$10.00".
func FormatWithSymbol(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + FormatWithPrecision(amount.Abs(), 2)
	}
	return symbol + FormatWithPrecision(amount, 2)
}
