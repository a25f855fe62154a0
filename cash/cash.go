// Package cash is the money flavour of the limit calculator: the base
// calculator plus "how much can I still spend today" in a chosen currency.
package cash

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/generic"
	"github.com/warp/limit-calculator/messages"
)

// =============================================================================
// CURRENCIES
// =============================================================================

// Currency is a lowercase currency code accepted by TodayCashRemained.
type Currency string

const (
	RUB Currency = "rub"
	USD Currency = "usd"
	EUR Currency = "eur"
)

// Rate is how a currency is shown and how many base units one of it costs.
type Rate struct {
	Code  Currency
	Label string
	Rate  decimal.Decimal
}

// Rates are fixed; the base unit is the rouble.
var Rates = map[Currency]Rate{
	RUB: {Code: RUB, Label: "руб", Rate: decimal.RequireFromString("1.00")},
	USD: {Code: USD, Label: "USD", Rate: decimal.RequireFromString("87.98")},
	EUR: {Code: EUR, Label: "Euro", Rate: decimal.RequireFromString("96.29")},
}

// LookupRate fails with a *generic.ValidationError for unknown codes.
func LookupRate(code Currency) (Rate, error) {
	r, ok := Rates[code]
	if !ok {
		return Rate{}, generic.NewValidationError("currency", "unknown currency", string(code))
	}
	return r, nil
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator embeds the base calculator, so AddRecord, TodayStats and
// WeekStats come from generic.
type Calculator struct {
	*generic.Calculator
	lang language.Tag
}

// Option configures a cash Calculator.
type Option func(*options)

type options struct {
	base []generic.Option
	lang language.Tag
}

// WithLanguage picks the language of the remaining-cash message.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

// WithClock is generic.WithClock for cash calculators.
func WithClock(c generic.Clock) Option {
	return func(o *options) { o.base = append(o.base, generic.WithClock(c)) }
}

// WithStore is generic.WithStore for cash calculators.
func WithStore(s generic.RecordStore) Option {
	return func(o *options) { o.base = append(o.base, generic.WithStore(s)) }
}

// New fails with a *generic.ValidationError when limit is negative.
func New(limit decimal.Decimal, opts ...Option) (*Calculator, error) {
	o := options{lang: messages.Default}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := generic.NewCalculator(limit, o.base...)
	if err != nil {
		return nil, err
	}
	return &Calculator{Calculator: base, lang: o.lang}, nil
}

// RemainedIn converts today's remaining balance into code, rounded to two
// decimal places. Negative means the limit is overspent.
func (c *Calculator) RemainedIn(code Currency) (decimal.Decimal, Rate, error) {
	rate, err := LookupRate(code)
	if err != nil {
		return decimal.Zero, Rate{}, err
	}
	return c.Remaining().DivRound(rate.Rate, 2), rate, nil
}

// TodayCashRemained describes today's remaining balance in code.
func (c *Calculator) TodayCashRemained(code Currency) (string, error) {
	amount, rate, err := c.RemainedIn(code)
	if err != nil {
		return "", err
	}

	switch {
	case amount.IsZero():
		return messages.Format(c.lang, messages.CashNone), nil
	case amount.IsPositive():
		return messages.Format(c.lang, messages.CashLeft, FormatAmount(amount), rate.Label), nil
	default:
		return messages.Format(c.lang, messages.CashDebt, FormatAmount(amount.Abs()), rate.Label), nil
	}
}

// FormatAmount renders d in its shortest form but always with a fractional
// part: 555 -> "555.0", 6.30 -> "6.3", 6.31 -> "6.31".
func FormatAmount(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
