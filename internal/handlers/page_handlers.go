package handlers

import (
	"net/http"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/constants"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/middleware"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// PageHandler serves the HTML site. Templates come from render.Templates
// and must be installed on the engine.
type PageHandler struct {
	source interfaces.ContentSource
}

func NewPageHandler(source interfaces.ContentSource) *PageHandler {
	return &PageHandler{source: source}
}

func (h *PageHandler) view(c *gin.Context, path string) render.View {
	return render.NewView(bundleFor(c, h.source), h.source.Registry(), path)
}

// RedirectHome sends / to the table of contents of the negotiated locale.
func (h *PageHandler) RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+string(middleware.GetLocale(c))+"/")
}

// Index renders the table of contents.
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", h.view(c, "/"))
}

// Chapter renders one chapter page addressed by index or slug.
func (h *PageHandler) Chapter(c *gin.Context) {
	ref := c.Param("ref")
	v := h.view(c, "/chapters/"+ref)

	page, err := render.BuildPage(v.Bundle, h.source.Registry(), ref)
	if err != nil {
		if chapters.IsNotFound(err) {
			c.HTML(http.StatusNotFound, "notfound.tmpl", v)
			return
		}
		sendError(c, http.StatusInternalServerError, constants.RenderFailed, err)
		return
	}
	v.Page = page
	c.HTML(http.StatusOK, "chapter.tmpl", v)
}

// Deck renders the pitch deck.
func (h *PageHandler) Deck(c *gin.Context) {
	v := h.view(c, "/deck")
	v.Deck = render.BuildDeck(v.Bundle, h.source.Registry())
	c.HTML(http.StatusOK, "deck.tmpl", v)
}

// Print renders every chapter for PDF capture.
func (h *PageHandler) Print(c *gin.Context) {
	v := h.view(c, "/print")
	doc, err := render.BuildPrint(v.Bundle, h.source.Registry())
	if err != nil {
		sendError(c, http.StatusInternalServerError, constants.RenderFailed, err)
		return
	}
	v.Print = doc
	c.HTML(http.StatusOK, "print.tmpl", v)
}

// AccessForm asks for the access code.
func (h *PageHandler) AccessForm(c *gin.Context) {
	c.HTML(http.StatusUnauthorized, "access.tmpl", h.view(c, stripLocale(c.Request.URL.Path)))
}

// NotFound answers unknown routes: JSON under /api, HTML elsewhere.
func (h *PageHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		sendError(c, http.StatusNotFound, constants.RouteNotFound, errors.Errorf("no route for %s", c.Request.URL.Path))
		return
	}
	c.HTML(http.StatusNotFound, "notfound.tmpl", h.view(c, "/"))
}

// stripLocale removes a leading /de or /en segment.
func stripLocale(path string) string {
	for _, l := range content.Supported {
		prefix := "/" + string(l)
		if path == prefix {
			return "/"
		}
		if strings.HasPrefix(path, prefix+"/") {
			return strings.TrimPrefix(path, prefix)
		}
	}
	return path
}
