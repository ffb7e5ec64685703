package render

import (
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMarkdown(t *testing.T) {
	page, err := BuildPage(embeddedBundle(t, content.EN), chapters.Default, "finance")
	require.NoError(t, err)

	md := PageMarkdown(page)
	assert.Contains(t, md, "# 6. Financial Plan\n")
	assert.Contains(t, md, "## 6.1 Revenue\n")
	assert.Contains(t, md, "| 2025 | 120 |")
	assert.Contains(t, md, "- **Gross margin**: 78%")
}

func TestPageMarkdown_Placeholder(t *testing.T) {
	b := content.NewBundle(content.DE, nil, chapters.Default)
	page, err := BuildPage(b, chapters.Default, "team")
	require.NoError(t, err)

	assert.Contains(t, PageMarkdown(page), "_Noch keine Daten verfügbar_")
}

func TestTOCMarkdown(t *testing.T) {
	b := embeddedBundle(t, content.EN)
	md := TOCMarkdown("Contents", BuildTOC(b, chapters.Default))

	assert.Contains(t, md, "1. Executive Summary (`executive`)")
	assert.Contains(t, md, "   - 8.3 Milestones")
}

func TestDeckMarkdown(t *testing.T) {
	md := DeckMarkdown(BuildDeck(embeddedBundle(t, content.EN), chapters.Default))

	assert.Contains(t, md, "## 3. Market & Competition")
	assert.Contains(t, md, "- **TAM**: 120 B")
}
