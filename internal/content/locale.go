package content

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the closed set of supported content languages.
type Locale string

const (
	DE Locale = "de"
	EN Locale = "en"

	// DefaultLocale is served whenever a requested locale is unsupported.
	DefaultLocale = DE
)

// Supported lists the locales in matcher preference order.
var Supported = []Locale{DE, EN}

var matcher = language.NewMatcher([]language.Tag{language.German, language.English})

// Tag returns the x/text language tag for l.
func (l Locale) Tag() language.Tag {
	switch l {
	case EN:
		return language.English
	default:
		return language.German
	}
}

func (l Locale) String() string {
	return string(l)
}

// ParseLocale normalizes tags such as "en-US" or "DE_at" to a supported
// locale. It reports false for anything outside the supported set.
func ParseLocale(tag string) (Locale, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	for _, l := range Supported {
		if string(l) == tag {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks a locale from an Accept-Language header value, or
// returns fallback when nothing matches.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(Supported) {
		return fallback
	}
	return Supported[idx]
}
