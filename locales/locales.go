// Package locales maps host language tags onto the SDK's locale identifiers
// and holds per-locale overrides for the SDK's UI strings.
package locales

import (
	"golang.org/x/text/language"

	"instabug_bridge/contract"
)

// supported pairs each SDK locale with its language tag. English comes first
// so it is the matcher's fallback.
var supported = []struct {
	tag    language.Tag
	locale contract.Locale
}{
	{language.English, contract.LocaleEnglish},
	{language.Arabic, contract.LocaleArabic},
	{language.Azerbaijani, contract.LocaleAzerbaijani},
	{language.SimplifiedChinese, contract.LocaleChineseSimplified},
	{language.TraditionalChinese, contract.LocaleChineseTraditional},
	{language.Czech, contract.LocaleCzech},
	{language.Danish, contract.LocaleDanish},
	{language.Dutch, contract.LocaleDutch},
	{language.French, contract.LocaleFrench},
	{language.German, contract.LocaleGerman},
	{language.Italian, contract.LocaleItalian},
	{language.Japanese, contract.LocaleJapanese},
	{language.Korean, contract.LocaleKorean},
	{language.Polish, contract.LocalePolish},
	{language.BrazilianPortuguese, contract.LocalePortugueseBrazil},
	{language.EuropeanPortuguese, contract.LocalePortuguesePortugal},
	{language.Russian, contract.LocaleRussian},
	{language.Spanish, contract.LocaleSpanish},
	{language.Swedish, contract.LocaleSwedish},
	{language.Turkish, contract.LocaleTurkish},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// Match returns the SDK locale closest to the BCP 47 tag. ok is false when
// the tag is invalid or nothing matched, in which case English is returned.
func Match(tag string) (locale contract.Locale, ok bool) {
	parsed, err := language.Parse(tag)
	if err != nil {
		return contract.LocaleEnglish, false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return contract.LocaleEnglish, false
	}
	return supported[index].locale, true
}

// Tag returns the language tag of an SDK locale, or und when unknown.
func Tag(locale contract.Locale) language.Tag {
	for _, s := range supported {
		if s.locale == locale {
			return s.tag
		}
	}
	return language.Und
}
