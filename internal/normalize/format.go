package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NoValue is shown in place of a number that could not be parsed. Rendering
// 0 would imply a data point that does not exist.
const NoValue = "—"

var placeholders = map[language.Base]string{
	mustBase("de"): "Noch keine Daten verfügbar",
	mustBase("en"): "No data available yet",
}

func mustBase(tag string) language.Base {
	b, _ := language.MustParse(tag).Base()
	return b
}

// Placeholder returns the "no data" text for tag, falling back to English.
func Placeholder(tag language.Tag) string {
	base, _ := tag.Base()
	if p, ok := placeholders[base]; ok {
		return p
	}
	return placeholders[mustBase("en")]
}

// FormatNumber formats v with the given number of decimals using the
// separators of tag.
func FormatNumber(v float64, decimals int, tag language.Tag) string {
	if decimals < 0 {
		decimals = 0
	}
	return message.NewPrinter(tag).Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatRange renders r for display, e.g. "25–40 Mio." or "~99 B".
func FormatRange(r ParsedRange, tag language.Tag) string {
	var b strings.Builder
	if r.Approximate {
		b.WriteString("~")
	}
	b.WriteString(FormatNumber(r.Low, r.Decimals, tag))
	if r.IsRange() {
		b.WriteString("–")
		b.WriteString(FormatNumber(r.High, r.Decimals, tag))
	}
	if suffix := unitSuffixFor(r.Unit, tag); suffix != "" {
		if r.Unit != UnitPercent {
			b.WriteString(" ")
		}
		b.WriteString(suffix)
	}
	return b.String()
}

// FormatText parses text and re-renders it with FormatRange, or returns
// NoValue when text holds no number.
func FormatText(text string, tag language.Tag) string {
	r, ok := ParseNumericRange(text)
	if !ok {
		return NoValue
	}
	return FormatRange(r, tag)
}

func unitSuffixFor(u Unit, tag language.Tag) string {
	german := false
	if base, _ := tag.Base(); base == mustBase("de") {
		german = true
	}
	switch u {
	case UnitPercent:
		return "%"
	case UnitThousand:
		if german {
			return "Tsd."
		}
		return "k"
	case UnitMillion:
		if german {
			return "Mio."
		}
		return "M"
	case UnitBillion:
		if german {
			return "Mrd."
		}
		return "B"
	}
	return ""
}
