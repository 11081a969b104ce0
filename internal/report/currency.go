// Package report turns a priced quote into text: currency strings, the
// markdown results sheet and the contact summary block.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/quoter/internal/quote"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency formats an amount as whole US dollars with thousands separators,
// e.g. "$45,731". Halves round away from zero.
func Currency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -n)
	}
	return "$" + printer.Sprintf("%d", n)
}

// CurrencyCents formats an amount with two decimal places, e.g. "$41,157.56".
func CurrencyCents(amount float64) string {
	cents := int64(math.Round(quote.Round2(amount) * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, printer.Sprintf("%d", cents/100), cents%100)
}

// Feet formats a length without trailing zeros, e.g. "10" or "3.5".
func Feet(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
