package render

import (
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeck(t *testing.T) {
	deck := BuildDeck(embeddedBundle(t, content.EN), chapters.Default)

	assert.Equal(t, content.EN, deck.Locale)
	assert.Equal(t, "Cyphera Business Plan", deck.Title)
	require.Len(t, deck.Slides, chapters.Default.Len())

	for i, s := range deck.Slides {
		assert.Equal(t, i+1, s.Index)
		assert.LessOrEqual(t, len(s.Bullets), maxBullets)
		assert.Empty(t, s.Placeholder, s.Slug)
	}

	market := deck.Slides[2]
	assert.Equal(t, "market", market.Slug)
	require.Len(t, market.Stats, 4)
	assert.Equal(t, "120 B", market.Stats[0].Display)

	funding := deck.Slides[7]
	require.NotNil(t, funding.Series)
	assert.Equal(t, "%", funding.Series.Unit)
	require.Len(t, funding.Stats, 1)
	assert.Equal(t, 2.5, funding.Stats[0].CountTo)
	assert.Equal(t, 1, funding.Stats[0].Decimals)
}

func TestBuildDeck_CountUpTargetsSkipGroupedNumbers(t *testing.T) {
	deck := BuildDeck(embeddedBundle(t, content.DE), chapters.Default)

	for _, card := range deck.CountUpTargets() {
		assert.True(t, card.Animate)
		assert.NotContains(t, []string{"CAC", "LTV"}, card.Label)
	}
}

func TestBuildDeck_EmptyContent(t *testing.T) {
	b := content.NewBundle(content.EN, content.LocalizedContentTree{}, chapters.Default)
	deck := BuildDeck(b, chapters.Default)

	require.Len(t, deck.Slides, 8)
	for _, s := range deck.Slides {
		assert.Equal(t, "No data available yet", s.Placeholder)
		assert.NotNil(t, s.Bullets)
	}
}
