package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenMessages(t *testing.T) {
	doc := map[string]any{
		"ui": map[string]any{"next": "Weiter", "count": 3},
		"chapters": map[string]any{
			"market": map[string]any{"title": "Markt"},
		},
		"empty": nil,
	}
	m := flattenMessages(doc)

	assert.Equal(t, "Weiter", m.T("ui.next", "Next"))
	assert.Equal(t, "3", m.T("ui.count", ""))
	assert.Equal(t, "Markt", m.T("chapters.market.title", "Market"))
	assert.Equal(t, "Fallback", m.T("missing.key", "Fallback"))
	assert.Equal(t, []string{"chapters.market.title", "ui.count", "ui.next"}, m.Keys())
}

func TestFlattenMessages_NotAMap(t *testing.T) {
	assert.Empty(t, flattenMessages(nil))
	assert.Empty(t, flattenMessages([]any{"a"}))
}
