package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English catalog entry is the key itself.
const (
	KeyReportTitle        = "Investment projection"
	KeyYear               = "Year"
	KeyYearLabel          = "Year %d"
	KeyContributions      = "Contributions"
	KeyTotalValue         = "Total value"
	KeyGain               = "Gain"
	KeyTotalContributions = "Total contributions"
	KeyTotalGain          = "Total gain"
	KeyGrowthMultiplier   = "Growth multiplier"
	KeyInitialInvestment  = "Initial investment"
	KeyMonthlyInvestment  = "Monthly investment"
	KeyReturnRate         = "Annual return"
	KeyYears              = "Years"
	KeyChartTitle         = "Portfolio growth"
	KeyNoProjection       = "Nothing to project for a zero-year horizon."
	KeyCommands           = "Available commands:\n• /project\n• /plan\n• /lang en|sr"
	KeyLanguageSet        = "Language set to %s"
	KeyUnknownLanguage    = "Unsupported language: %s"
)

var catalog = map[language.Tag]map[string]string{
	Serbian: {
		KeyReportTitle:        "Projekcija investicije",
		KeyYear:               "Godina",
		KeyYearLabel:          "Godina %d",
		KeyContributions:      "Uplate",
		KeyTotalValue:         "Ukupna vrednost",
		KeyGain:               "Dobit",
		KeyTotalContributions: "Ukupne uplate",
		KeyTotalGain:          "Ukupna dobit",
		KeyGrowthMultiplier:   "Multiplikator rasta",
		KeyInitialInvestment:  "Početna investicija",
		KeyMonthlyInvestment:  "Mesečna investicija",
		KeyReturnRate:         "Godišnji prinos",
		KeyYears:              "Godine",
		KeyChartTitle:         "Rast portfolija",
		KeyNoProjection:       "Nema projekcije za period od nula godina.",
		KeyCommands:           "Dostupne komande:\n• /project\n• /plan\n• /lang en|sr",
		KeyLanguageSet:        "Jezik je postavljen na %s",
		KeyUnknownLanguage:    "Nepodržan jezik: %s",
	},
}

func init() {
	for _, key := range []string{
		KeyReportTitle, KeyYear, KeyYearLabel, KeyContributions, KeyTotalValue,
		KeyGain, KeyTotalContributions, KeyTotalGain, KeyGrowthMultiplier,
		KeyInitialInvestment, KeyMonthlyInvestment, KeyReturnRate, KeyYears,
		KeyChartTitle, KeyNoProjection, KeyCommands, KeyLanguageSet, KeyUnknownLanguage,
	} {
		if err := message.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
	for tag, entries := range catalog {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}
