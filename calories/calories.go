// Package calories is the food flavour of the limit calculator.
package calories

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/generic"
	"github.com/warp/limit-calculator/messages"
)

type Calculator struct {
	*generic.Calculator
	lang language.Tag
}

type Option func(*options)

type options struct {
	base []generic.Option
	lang language.Tag
}

func WithLanguage(tag language.Tag) Option {
	return func(o *options) { o.lang = tag }
}

func WithClock(c generic.Clock) Option {
	return func(o *options) { o.base = append(o.base, generic.WithClock(c)) }
}

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

// CaloriesRemained says how many kcal are left today, or to stop once the
// limit is passed. Exactly zero left still counts as "may eat".
func (c *Calculator) CaloriesRemained() string {
	remainder := c.Remaining()
	if remainder.IsNegative() {
		return messages.Format(c.lang, messages.CaloriesStop)
	}
	return messages.Format(c.lang, messages.CaloriesLeft, remainder.String())
}
