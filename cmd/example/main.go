// Command example runs the sample scenario: a 1000 rouble cash calculator,
// two purchases today and an old bar tab, then prints what is left.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/warp/limit-calculator/cash"
	"github.com/warp/limit-calculator/generic"
	"github.com/warp/limit-calculator/messages"
)

func main() {
	lang := kingpin.Flag("lang", "Message language (en, ru).").Default("en").String()
	currency := kingpin.Flag("currency", "Currency of the result (rub, usd, eur).").Default("rub").String()
	kingpin.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid language %q: %v", *lang, err)
	}

	msg, err := run(context.Background(), tag, cash.Currency(*currency))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, msg)
}

func run(ctx context.Context, tag language.Tag, currency cash.Currency) (string, error) {
	if !messages.Supported(tag) {
		return "", fmt.Errorf("unsupported language %q (supported: en, ru)", tag)
	}
	calc, err := cash.New(decimal.NewFromInt(1000), cash.WithLanguage(tag))
	if err != nil {
		return "", err
	}

	entries := []struct {
		amount  int64
		comment string
		date    string
	}{
		{145, "coffee", ""},
		{300, "lunch for Serge", ""},
		{3000, "bar on Tanya's birthday", "08.11.2019"},
	}
	for _, e := range entries {
		rec, err := generic.NewRecord(calc.Clock(), e.amount, e.comment, e.date)
		if err != nil {
			return "", err
		}
		if err := calc.AddRecord(ctx, rec); err != nil {
			return "", err
		}
	}

	return calc.TodayCashRemained(currency)
}
