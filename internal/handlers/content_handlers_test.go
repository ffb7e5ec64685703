package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHandler_ListIssues(t *testing.T) {
	source := newSource(t)
	source.EXPECT().Issues().Return([]content.Issue{
		{Locale: content.DE, Domain: "market", Field: "tam", Severity: content.SeverityError, Message: "required by chapter market"},
		{Locale: content.EN, Domain: "risks", Field: "items", Severity: content.SeverityWarning, Message: "unrecognized list shape"},
	}).Times(2)
	router := newTestRouter(t, source)

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{"all issues", "/api/v1/content/issues", 2},
		{"errors only", "/api/v1/content/issues?severity=error", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.target)
			require.Equal(t, http.StatusOK, w.Code)

			var resp IssuesResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Len(t, resp.Issues, tt.wantCount)
			assert.True(t, resp.HasErrors)
		})
	}
}

func TestContentHandler_ListLocales(t *testing.T) {
	router := newTestRouter(t, newSource(t))

	w := get(router, "/api/v1/locales")
	require.Equal(t, http.StatusOK, w.Code)

	var resp LocalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []content.Locale{content.DE, content.EN}, resp.Locales)
	assert.Equal(t, content.DE, resp.Default)
}
