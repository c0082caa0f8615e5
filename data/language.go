// Package data provides names of languages and locations.
package data

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// GetLanguageName returns the English name of a language code such as
// "de" or "zh", or "" if the code is unknown.
func GetLanguageName(code string) string {
	base, err := language.ParseBase(code)
	if err != nil {
		return ""
	}
	return display.English.Languages().Name(base)
}

// GetLocationName returns the English name of a country or region code
// such as "CN" or "BR", or "" if the code is unknown.
func GetLocationName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return ""
	}
	return display.English.Regions().Name(region)
}
