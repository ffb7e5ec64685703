package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckHandler_GetDeck(t *testing.T) {
	router := newTestRouter(t, newSource(t))

	w := get(router, "/api/v1/deck?lang=de")
	require.Equal(t, http.StatusOK, w.Code)

	var deck render.Deck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deck))
	assert.Equal(t, content.DE, deck.Locale)
	require.Len(t, deck.Slides, 8)
	assert.Equal(t, "Markt & Wettbewerb", deck.Slides[2].Title)
}

func TestDeckHandler_GetPrint(t *testing.T) {
	router := newTestRouter(t, newSource(t))

	w := get(router, "/api/v1/print", "Accept-Language", "en-US")
	require.Equal(t, http.StatusOK, w.Code)

	var doc render.PrintDocument
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, content.EN, doc.Locale)
	require.Len(t, doc.Pages, 8)
	for i, page := range doc.Pages {
		assert.Equal(t, i+1, page.Index)
	}
}
