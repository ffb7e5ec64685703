package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/middleware"
	"github.com/cyphera/cyphera-pitch/internal/mocks"
	"github.com/cyphera/cyphera-pitch/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

// newSource returns a mock content source backed by the embedded content.
func newSource(t *testing.T) *mocks.MockContentSource {
	t.Helper()
	bundles, err := content.NewLoader(content.EmbeddedFS()).LoadBundles(context.Background(), chapters.Default)
	require.NoError(t, err)

	source := mocks.NewMockContentSourceForTest(t)
	source.EXPECT().Registry().Return(chapters.Default).AnyTimes()
	source.EXPECT().DefaultLocale().Return(content.DE).AnyTimes()
	source.EXPECT().LoadedAt().Return(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)).AnyTimes()
	source.EXPECT().Bundle(gomock.Any()).DoAndReturn(func(l content.Locale) *content.Bundle {
		if b, ok := bundles[l]; ok {
			return b
		}
		return bundles[content.DE]
	}).AnyTimes()
	return source
}

// newTestRouter wires the handlers the way the server does, without the
// access gate or rate limiter.
func newTestRouter(t *testing.T, source *mocks.MockContentSource) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.SetHTMLTemplate(render.MustTemplates())
	router.Use(middleware.CorrelationIDMiddleware(), middleware.LocaleMiddleware(content.DE))

	pages := NewPageHandler(source)
	chapterHandler := NewChapterHandler(source)
	deckHandler := NewDeckHandler(source)
	contentHandler := NewContentHandler(source)

	router.GET("/health", NewHealthHandler(source).Health)
	router.GET("/", pages.RedirectHome)
	for _, l := range content.Supported {
		g := router.Group("/" + string(l))
		g.GET("/", pages.Index)
		g.GET("/chapters/:ref", pages.Chapter)
		g.GET("/deck", pages.Deck)
		g.GET("/print", pages.Print)
	}

	v1 := router.Group("/api/v1")
	v1.GET("/chapters", chapterHandler.ListChapters)
	v1.GET("/chapters/:ref", chapterHandler.GetChapter)
	v1.GET("/routes", chapterHandler.GetRouteParams)
	v1.GET("/deck", deckHandler.GetDeck)
	v1.GET("/print", deckHandler.GetPrint)
	v1.GET("/content/issues", contentHandler.ListIssues)
	v1.GET("/locales", contentHandler.ListLocales)

	router.NoRoute(pages.NotFound)
	return router
}

func get(router http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
