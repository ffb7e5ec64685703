package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHandler(t *testing.T) {
	router := newTestRouter(t, newSource(t))

	tests := []struct {
		name     string
		target   string
		headers  []string
		status   int
		contains []string
	}{
		{
			name:     "index de",
			target:   "/de/",
			status:   http.StatusOK,
			contains: []string{`<html lang="de">`, "Geschäftsmodell", `href="/de/chapters/2"`},
		},
		{
			name:     "chapter by index",
			target:   "/en/chapters/2",
			status:   http.StatusOK,
			contains: []string{"Business Model", "2.1</span>", "2.4</span>", `href="/de/chapters/2"`},
		},
		{
			name:     "chapter by slug",
			target:   "/de/chapters/finance",
			status:   http.StatusOK,
			contains: []string{"Finanzplan", "6.1</span>", "series-data"},
		},
		{
			name:     "chapter index out of range",
			target:   "/de/chapters/9",
			status:   http.StatusNotFound,
			contains: []string{"Diese Seite gibt es nicht."},
		},
		{
			name:     "unknown slug",
			target:   "/en/chapters/nope",
			status:   http.StatusNotFound,
			contains: []string{"This page does not exist."},
		},
		{
			name:     "deck",
			target:   "/en/deck",
			status:   http.StatusOK,
			contains: []string{`id="slide-1"`, "data-count-to"},
		},
		{
			name:     "print",
			target:   "/de/print",
			status:   http.StatusOK,
			contains: []string{`id="chapter-1"`, `id="chapter-8"`},
		},
		{
			name:     "unknown html route",
			target:   "/en/nowhere",
			status:   http.StatusNotFound,
			contains: []string{"This page does not exist."},
		},
		{
			name:     "unknown api route",
			target:   "/api/v1/nowhere",
			status:   http.StatusNotFound,
			contains: []string{`"error":"route not found"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(router, tt.target, tt.headers...)
			assert.Equal(t, tt.status, w.Code)
			for _, want := range tt.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestPageHandler_RedirectHome(t *testing.T) {
	router := newTestRouter(t, newSource(t))

	w := get(router, "/", "Accept-Language", "en-GB,en;q=0.9")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/en/", w.Header().Get("Location"))

	w = get(router, "/")
	assert.Equal(t, "/de/", w.Header().Get("Location"))
}

func TestStripLocale(t *testing.T) {
	assert.Equal(t, "/deck", stripLocale("/de/deck"))
	assert.Equal(t, "/", stripLocale("/en"))
	assert.Equal(t, "/deck", stripLocale("/deck"))
	assert.Equal(t, "/english", stripLocale("/english"))
}
