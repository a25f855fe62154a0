// Package messages holds every user-facing sentence the calculators produce.
//
// Texts live in an x/text catalog keyed by calculator kind and outcome, in
// English (the fallback) and Russian. Arguments are passed pre-formatted as
// strings so the printer never re-localizes numbers.
package messages

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies one message in the catalog.
type Key string

const (
	CashLeft     Key = "cash.left"     // amount, currency label
	CashNone     Key = "cash.none"     // no arguments
	CashDebt     Key = "cash.debt"     // amount owed, currency label
	CaloriesLeft Key = "calories.left" // kcal
	CaloriesStop Key = "calories.stop" // no arguments
)

// Default is the language used when none is configured.
var Default = language.English

var texts = map[language.Tag]map[Key]string{
	language.English: {
		CashLeft:     "today you can still spend %s %s",
		CashNone:     "no money left, hang in there",
		CashDebt:     "no money left, hang in there: you owe %s %s",
		CaloriesLeft: "you can eat something else today, but with a total of no more than %s kcal",
		CaloriesStop: "stop eating!",
	},
	language.Russian: {
		CashLeft:     "На сегодня осталось %s %s",
		CashNone:     "Денег нет, держись",
		CashDebt:     "Денег нет, держись: твой долг - %s %s",
		CaloriesLeft: "Сегодня можно съесть что-нибудь ещё, но с общей калорийностью не более %s кКал",
		CaloriesStop: "Хватит есть!",
	},
}

var cat = mustBuild()

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(Default))
	for tag, msgs := range texts {
		for key, text := range msgs {
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(fmt.Sprintf("messages: register %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Languages lists the tags the catalog has texts for.
func Languages() []language.Tag {
	return cat.Languages()
}

// Match maps tag to a catalog language by its base language ("ru-RU" is
// Russian). Unknown languages map to Default.
func Match(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for known := range texts {
		if kb, _ := known.Base(); kb == base {
			return known
		}
	}
	return Default
}

// Supported reports whether tag's language has its own texts.
func Supported(tag language.Tag) bool {
	return Match(tag) != Default || isDefault(tag)
}

func isDefault(tag language.Tag) bool {
	base, _ := tag.Base()
	db, _ := Default.Base()
	return base == db
}

// Printer returns a printer for tag. Unknown tags print the Default texts.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(cat))
}

// Format renders key in tag with args.
func Format(tag language.Tag, key Key, args ...any) string {
	return Printer(tag).Sprintf(string(key), args...)
}
