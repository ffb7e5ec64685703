package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/gin-gonic/gin"
)

// ChapterHandler serves the chapter list and chapter pages as JSON.
type ChapterHandler struct {
	source interfaces.ContentSource
}

func NewChapterHandler(source interfaces.ContentSource) *ChapterHandler {
	return &ChapterHandler{source: source}
}

// ListChaptersResponse is the numbered table of contents.
type ListChaptersResponse struct {
	Locale   content.Locale    `json:"locale"`
	Chapters []render.TOCEntry `json:"chapters"`
}

// RouteParamsResponse lists one entry per addressable chapter route.
type RouteParamsResponse struct {
	Params []chapters.RouteParams `json:"params"`
}

// ListChapters godoc
// @Summary      List chapters
// @Description  Returns every chapter in document order with its subchapter numbering
// @Tags         chapters
// @Produce      json
// @Param        lang  query     string  false  "Locale (de or en)"
// @Success      200   {object}  ListChaptersResponse
// @Router       /api/v1/chapters [get]
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	b := bundleFor(c, h.source)
	sendSuccess(c, http.StatusOK, ListChaptersResponse{
		Locale:   b.Locale,
		Chapters: render.BuildTOC(b, h.source.Registry()),
	})
}

// GetChapter godoc
// @Summary      Get a chapter page
// @Description  Returns the page view model of a chapter addressed by 1-based index or slug
// @Tags         chapters
// @Produce      json
// @Param        ref   path      string  true   "Chapter index or slug"
// @Param        lang  query     string  false  "Locale (de or en)"
// @Success      200   {object}  render.Page
// @Failure      404   {object}  ErrorResponse
// @Router       /api/v1/chapters/{ref} [get]
func (h *ChapterHandler) GetChapter(c *gin.Context) {
	page, err := render.BuildPage(bundleFor(c, h.source), h.source.Registry(), c.Param("ref"))
	if err != nil {
		handleRenderError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, page)
}

// GetRouteParams godoc
// @Summary      List static route parameters
// @Description  Returns one {chapterId} record per chapter for pre-rendering
// @Tags         chapters
// @Produce      json
// @Success      200  {object}  RouteParamsResponse
// @Router       /api/v1/routes [get]
func (h *ChapterHandler) GetRouteParams(c *gin.Context) {
	sendSuccess(c, http.StatusOK, RouteParamsResponse{Params: h.source.Registry().StaticRouteParams()})
}
