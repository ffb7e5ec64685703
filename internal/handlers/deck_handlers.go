package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/gin-gonic/gin"
)

// DeckHandler serves the pitch deck and the print document as JSON.
type DeckHandler struct {
	source interfaces.ContentSource
}

func NewDeckHandler(source interfaces.ContentSource) *DeckHandler {
	return &DeckHandler{source: source}
}

// GetDeck godoc
// @Summary      Get the pitch deck
// @Description  Returns one condensed slide per chapter with count-up targets
// @Tags         deck
// @Produce      json
// @Param        lang  query     string  false  "Locale (de or en)"
// @Success      200   {object}  render.Deck
// @Router       /api/v1/deck [get]
func (h *DeckHandler) GetDeck(c *gin.Context) {
	sendSuccess(c, http.StatusOK, render.BuildDeck(bundleFor(c, h.source), h.source.Registry()))
}

// GetPrint godoc
// @Summary      Get the print document
// @Description  Returns every chapter page in document order
// @Tags         deck
// @Produce      json
// @Param        lang  query     string  false  "Locale (de or en)"
// @Success      200   {object}  render.PrintDocument
// @Failure      500   {object}  ErrorResponse
// @Router       /api/v1/print [get]
func (h *DeckHandler) GetPrint(c *gin.Context) {
	doc, err := render.BuildPrint(bundleFor(c, h.source), h.source.Registry())
	if err != nil {
		handleRenderError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, doc)
}
