package content

import (
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRequiredFields(t *testing.T) {
	registry, err := chapters.NewRegistry([]chapters.Chapter{
		{ID: 1, Slug: "market", RequiredFields: []string{"market.tam", "market.sam"}},
		{ID: 2, Slug: "risks", RequiredFields: []string{"risks.items"}},
	})
	require.NoError(t, err)

	tree := LocalizedContentTree{
		"market": map[string]any{"tam": "120", "sam": "  "},
		"risks":  map[string]any{"items": []any{}},
	}
	issues := CheckRequiredFields(DE, tree, registry)

	require.Len(t, issues, 2)
	assert.Equal(t, "market", issues[0].Domain)
	assert.Equal(t, "sam", issues[0].Field)
	assert.Equal(t, SeverityError, issues[0].Severity)
	assert.Equal(t, "required by chapter market", issues[0].Message)
	assert.Equal(t, "risks", issues[1].Domain)
	assert.True(t, HasErrors(issues))
}

func TestLocalizedContentTree_Lookup(t *testing.T) {
	tree := LocalizedContentTree{
		"market": map[string]any{"som": map[string]any{"value": "1"}},
	}
	v, ok := tree.Lookup("market.som.value")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok = tree.Lookup("market.tam")
	assert.False(t, ok)
	_, ok = tree.Lookup("market.som.value.deeper")
	assert.False(t, ok)
}
