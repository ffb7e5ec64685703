package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "Noch keine Daten verfügbar", Placeholder(language.German))
	assert.Equal(t, "No data available yet", Placeholder(language.English))
	assert.Equal(t, "No data available yet", Placeholder(language.French))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "52.5", FormatNumber(52.5, 1, language.English))
	assert.Equal(t, "52,5", FormatNumber(52.5, 1, language.German))
	assert.Equal(t, "40", FormatNumber(40, 0, language.English))
}

func TestFormatRange(t *testing.T) {
	r, _ := ParseNumericRange("€25–40M")
	assert.Equal(t, "25–40 M", FormatRange(r, language.English))
	assert.Equal(t, "25–40 Mio.", FormatRange(r, language.German))

	p, _ := ParseNumericRange("45–60%")
	assert.Equal(t, "45–60%", FormatRange(p, language.English))

	a, _ := ParseNumericRange("~99 Mrd. USD")
	assert.Equal(t, "~99 Mrd.", FormatRange(a, language.German))
}

func TestFormatText_Unparseable(t *testing.T) {
	assert.Equal(t, NoValue, FormatText("program dependent", language.English))
}
