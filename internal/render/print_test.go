package render

import (
	"strconv"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrint_MatchesInteractivePages(t *testing.T) {
	b := embeddedBundle(t, content.DE)

	doc, err := BuildPrint(b, chapters.Default)
	require.NoError(t, err)
	require.Len(t, doc.Pages, chapters.Default.Len())

	for i, page := range doc.Pages {
		want, err := BuildPage(b, chapters.Default, strconv.Itoa(i+1))
		require.NoError(t, err)
		if diff := cmp.Diff(want, page); diff != "" {
			t.Errorf("print page %d differs (-page +print):\n%s", i+1, diff)
		}
	}
}

func TestBuildTOC_NumberingMatchesPages(t *testing.T) {
	b := embeddedBundle(t, content.EN)
	toc := BuildTOC(b, chapters.Default)
	require.Len(t, toc, chapters.Default.Len())

	for _, entry := range toc {
		page, err := BuildPage(b, chapters.Default, entry.Slug)
		require.NoError(t, err)
		require.Len(t, entry.Sections, len(page.Sections))
		for i, s := range entry.Sections {
			assert.Equal(t, page.Sections[i].Number, s.Number)
			assert.Equal(t, page.Sections[i].Title, s.Title)
		}
	}
	assert.Equal(t, "2.1", toc[1].Sections[0].Number)
}
