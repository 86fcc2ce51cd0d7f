package i18n

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Serbian is written in Latin script throughout the app.
var Serbian = language.MustParse("sr-Latn")

var supportedTags = []language.Tag{
	language.English,
	Serbian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// symbolAfter lists locales that print the currency symbol after the amount.
var symbolAfter = map[language.Tag]bool{
	Serbian: true,
}

var currencySymbols = map[currency.Unit]string{
	currency.EUR: "€",
	currency.USD: "$",
	currency.GBP: "£",
	currency.CHF: "CHF",
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Code returns the short code used in config and bot commands ("en", "sr").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Lookup resolves value to a supported tag by its base language.
func Lookup(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if b, _ := tag.Base(); b == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// Match resolves a tag or an Accept-Language header to the closest supported
// tag, falling back to Default.
func Match(value string) language.Tag {
	if tag, ok := Lookup(value); ok {
		return tag
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// FormatCurrency renders amount with two fraction digits using the locale's
// separators and the currency's symbol.
func FormatCurrency(tag language.Tag, unit currency.Unit, amount float64) string {
	num := Printer(tag).Sprint(number.Decimal(amount, number.Scale(2)))
	sym, ok := currencySymbols[unit]
	if !ok {
		sym = unit.String()
	}
	if symbolAfter[tag] {
		return num + " " + sym
	}
	if len(sym) > 1 && sym == unit.String() {
		return sym + " " + num
	}
	return sym + num
}
