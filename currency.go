package pocketbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/Rhymond/go-money"
)

// ErrInvalidCurrency reports a currency code absent from the rate table.
// Callers must treat it as recoverable: show a zero result and a message,
// never crash the conversion path.
var ErrInvalidCurrency = errors.New("unknown currency")

// defaultRates is the static exchange-rate table, relative to USD.
var defaultRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110.25,
	"CAD": 1.25,
	"AUD": 1.35,
	"CHF": 0.92,
	"CNY": 7.12,
	"INR": 83.15,
	"NPR": 139.31,
}

// currencyFlags maps currency codes to their display glyph.
var currencyFlags = map[string]string{
	"USD": "🇺🇸",
	"EUR": "🇪🇺",
	"GBP": "🇬🇧",
	"JPY": "🇯🇵",
	"CAD": "🇨🇦",
	"AUD": "🇦🇺",
	"CHF": "🇨🇭",
	"CNY": "🇨🇳",
	"INR": "🇮🇳",
	"NPR": "🇳🇵",
}

// Flag returns the display glyph for a currency code, or "" if unknown.
func Flag(code string) string { return currencyFlags[code] }

// Converter converts amounts between currencies using a rate table keyed by
// currency code, relative to one base unit. It is pure and stateless: no
// side effects, no I/O.
type Converter struct {
	rates map[string]float64
}

// NewConverter returns a converter over the built-in rate table.
func NewConverter() *Converter {
	return &Converter{rates: defaultRates}
}

// NewConverterWith returns a converter over a custom rate table.
func NewConverterWith(rates map[string]float64) *Converter {
	return &Converter{rates: rates}
}

// Has reports whether the code is in the rate table.
func (c *Converter) Has(code string) bool {
	_, ok := c.rates[code]
	return ok
}

// Codes returns the currency codes of the rate table in alphabetical order.
func (c *Converter) Codes() []string {
	codes := make([]string, 0, len(c.rates))
	for code := range c.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Convert computes amount * rate[to] / rate[from]. It fails with
// ErrInvalidCurrency when either code is absent from the rate table.
func (c *Converter) Convert(amount float64, from, to string) (float64, error) {
	fromRate, ok := c.rates[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCurrency, from)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCurrency, to)
	}
	return amount * toRate / fromRate, nil
}

// Rate returns the effective exchange rate rate[to] / rate[from] at full
// precision.
func (c *Converter) Rate(from, to string) (float64, error) {
	return c.Convert(1, from, to)
}

// DisplayRate returns the effective exchange rate rounded to 4 decimal
// places, for presentation only.
func (c *Converter) DisplayRate(from, to string) (string, error) {
	r, err := c.Rate(from, to)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(r, 'f', 4, 64), nil
}

// FormatAmount formats a converted amount for display:
// non-finite values render as "0.00", very large magnitudes switch to
// exponential notation, very small ones get extra fractional digits.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	mag := math.Abs(v)
	switch {
	case mag > 999999:
		return strconv.FormatFloat(v, 'e', 2, 64)
	case mag > 0 && mag < 0.01:
		return strconv.FormatFloat(v, 'f', 6, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// FormatMoney formats an amount with the currency's own symbol and digit
// grouping. Codes outside go-money's registry still format, with a default
// two-digit fraction.
func FormatMoney(v float64, code string) string {
	return money.NewFromFloat(v, code).Display()
}

// LoadRates reads a JSON document and extracts a code-to-rate object from
// it using a jsonpath expression, so a rate table exported from a rates API
// can replace the built-in one without code changes. An empty expression
// defaults to "$.rates".
func LoadRates(r io.Reader, expr string) (map[string]float64, error) {
	if expr == "" {
		expr = "$.rates"
	}
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse rates document: %w", err)
	}
	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q on rates document: %w", expr, err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("path %q does not select a rate object", expr)
	}

	rates := make(map[string]float64, len(jrates))
	for code, jrate := range jrates {
		rate, ok := jrate.(float64)
		if !ok || rate <= 0 {
			return nil, fmt.Errorf("invalid rate for %q: %v", code, jrate)
		}
		rates[code] = rate
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("path %q selected an empty rate object", expr)
	}
	return rates, nil
}
