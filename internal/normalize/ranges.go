package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is the scale a parsed range is expressed in.
type Unit string

const (
	UnitNone     Unit = "none"
	UnitPercent  Unit = "percent"
	UnitThousand Unit = "currency-thousand"
	UnitMillion  Unit = "currency-million"
	UnitBillion  Unit = "currency-billion"
)

// Multiplier converts a value in u into base units. Percent and none are 1.
func (u Unit) Multiplier() float64 {
	switch u {
	case UnitThousand:
		return 1e3
	case UnitMillion:
		return 1e6
	case UnitBillion:
		return 1e9
	default:
		return 1
	}
}

// ParsedRange is a numeric range extracted from display text such as
// "€25–40 Mio". Low, High and Mean stay in the unit the text was written in.
type ParsedRange struct {
	Low         float64 `json:"low"`
	High        float64 `json:"high"`
	Mean        float64 `json:"mean"`
	Unit        Unit    `json:"unit"`
	Decimals    int     `json:"decimals"`
	Approximate bool    `json:"approximate,omitempty"`
}

// IsRange reports whether the text carried two distinct bounds.
func (r ParsedRange) IsRange() bool {
	return r.Low != r.High
}

// ScaledMean returns the mean in base units. Percent values are not rescaled.
func (r ParsedRange) ScaledMean() float64 {
	return r.Mean * r.Unit.Multiplier()
}

var (
	numberToken  = `(?:\d{1,3}(?:,\d{3})+\.\d+|\d{1,3}(?:\.\d{3})+,\d+|\d+(?:[.,]\d+)?)`
	rangePattern = regexp.MustCompile(`(` + numberToken + `)\s*[-–—]\s*(` + numberToken + `)`)
	singleNumber = regexp.MustCompile(numberToken)
	approxMarker = regexp.MustCompile(`[~>≈]\s*[€$£]?\s*\d`)
	unitSuffix   = regexp.MustCompile(`^\s*(Mrd|Mio|B|M|k|K)\.?(?:[^\p{L}\p{N}]|$)`)
)

// ParseNumericRange extracts a number or a two-number range from text.
//
// A percent sign anywhere in the text makes the result a percentage and
// suppresses k/M/B scaling, so the first range is reported as a percent even
// when the % belongs to another number ("2024–2030: 12%" yields 2024–2030).
// Without a unit token the unit is UnitNone. It returns false when the text
// holds no numeric token at all.
//
// A token with both separators ("1,234.5", "1.234,5") reads the last one as
// the decimal mark. A single separator is always decimal, so "1,234" is 1.234.
func ParseNumericRange(text string) (ParsedRange, bool) {
	var lowTok, highTok string
	var end int

	if m := rangePattern.FindStringSubmatchIndex(text); m != nil {
		lowTok, highTok = text[m[2]:m[3]], text[m[4]:m[5]]
		end = m[1]
	} else if m := singleNumber.FindStringIndex(text); m != nil {
		lowTok = text[m[0]:m[1]]
		highTok = lowTok
		end = m[1]
	} else {
		return ParsedRange{}, false
	}

	low, errLow := parseDecimal(lowTok)
	high, errHigh := parseDecimal(highTok)
	if errLow != nil || errHigh != nil {
		return ParsedRange{}, false
	}

	r := ParsedRange{
		Low:         low,
		High:        high,
		Mean:        (low + high) / 2,
		Unit:        UnitNone,
		Approximate: approxMarker.MatchString(text),
	}
	if strings.ContainsAny(lowTok+highTok, ".,") {
		r.Decimals = 1
	}

	if strings.Contains(text, "%") {
		r.Unit = UnitPercent
		return r, true
	}
	if m := unitSuffix.FindStringSubmatch(text[end:]); m != nil {
		r.Unit = unitFromToken(m[1])
	}
	return r, true
}

// ParseNumericRangeAssuming parses text like ParseNumericRange and applies
// fallback when the text carries no unit token. Only call sites whose
// content convention fixes the unit should use it.
func ParseNumericRangeAssuming(text string, fallback Unit) (ParsedRange, bool) {
	r, ok := ParseNumericRange(text)
	if ok && r.Unit == UnitNone {
		r.Unit = fallback
	}
	return r, ok
}

func unitFromToken(tok string) Unit {
	switch tok {
	case "k", "K":
		return UnitThousand
	case "M", "Mio":
		return UnitMillion
	case "B", "Mrd":
		return UnitBillion
	}
	return UnitNone
}

func parseDecimal(tok string) (float64, error) {
	if strings.Contains(tok, ".") && strings.Contains(tok, ",") {
		if strings.LastIndex(tok, ",") > strings.LastIndex(tok, ".") {
			tok = strings.ReplaceAll(tok, ".", "")
		} else {
			tok = strings.ReplaceAll(tok, ",", "")
		}
	}
	return strconv.ParseFloat(strings.Replace(tok, ",", ".", 1), 64)
}
