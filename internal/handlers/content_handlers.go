package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/gin-gonic/gin"
)

// ContentHandler exposes content quality and locale information.
type ContentHandler struct {
	source interfaces.ContentSource
}

func NewContentHandler(source interfaces.ContentSource) *ContentHandler {
	return &ContentHandler{source: source}
}

// IssuesResponse lists content issues of every locale.
type IssuesResponse struct {
	Issues    []content.Issue `json:"issues"`
	HasErrors bool            `json:"has_errors"`
}

// LocalesResponse lists the supported locales.
type LocalesResponse struct {
	Locales []content.Locale `json:"locales"`
	Default content.Locale   `json:"default"`
}

// ListIssues godoc
// @Summary      List content issues
// @Description  Returns the warnings and missing required fields found while loading content
// @Tags         content
// @Produce      json
// @Param        severity  query     string  false  "Filter by severity (warning or error)"
// @Success      200       {object}  IssuesResponse
// @Router       /api/v1/content/issues [get]
func (h *ContentHandler) ListIssues(c *gin.Context) {
	all := h.source.Issues()
	severity := content.Severity(c.Query("severity"))

	issues := make([]content.Issue, 0, len(all))
	for _, issue := range all {
		if severity == "" || issue.Severity == severity {
			issues = append(issues, issue)
		}
	}
	sendSuccess(c, http.StatusOK, IssuesResponse{Issues: issues, HasErrors: content.HasErrors(all)})
}

// ListLocales godoc
// @Summary      List locales
// @Description  Returns the supported locales and the default
// @Tags         content
// @Produce      json
// @Success      200  {object}  LocalesResponse
// @Router       /api/v1/locales [get]
func (h *ContentHandler) ListLocales(c *gin.Context) {
	sendSuccess(c, http.StatusOK, LocalesResponse{
		Locales: content.Supported,
		Default: h.source.DefaultLocale(),
	})
}
