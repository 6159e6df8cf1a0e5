package renderer

import (
	"fmt"
	"strings"

	"github.com/jmorel/pocketbook"
)

// Conversion renders a currency conversion result with the effective
// exchange rate line, flag glyphs included.
func Conversion(amount float64, from string, result float64, to string, displayRate string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s = **%s %s**\n\n",
		pocketbook.FormatAmount(amount), from, pocketbook.FormatAmount(result), to)
	fmt.Fprintf(&b, "%s 1 %s = %s %s %s\n",
		pocketbook.Flag(from), from, displayRate, to, pocketbook.Flag(to))
	return b.String()
}

// Rates renders the whole rate table relative to the base currency.
func Rates(conv *pocketbook.Converter, base string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "| Currency | 1 %s buys |\n", base)
	fmt.Fprintf(&b, "|:---|---:|\n")
	for _, code := range conv.Codes() {
		rate, err := conv.DisplayRate(base, code)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "| %s %s | %s |\n", pocketbook.Flag(code), code, rate)
	}
	return b.String()
}
