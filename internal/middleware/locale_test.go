package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		cookie     string
		accept     string
		wantLocale content.Locale
		wantSource string
	}{
		{"path wins over everything", "/en/deck?lang=de", "de", "de", content.EN, LocaleFromPath},
		{"query wins over cookie", "/deck?lang=en", "de", "de", content.EN, LocaleFromQuery},
		{"cookie wins over header", "/deck", "en", "de-DE", content.EN, LocaleFromCookie},
		{"accept-language", "/deck", "", "en-GB,en;q=0.8", content.EN, LocaleFromHeader},
		{"unsupported header falls back", "/deck", "", "fr-FR", content.DE, LocaleFromHeader},
		{"default", "/deck", "", "", content.DE, LocaleFromDefault},
		{"invalid query ignored", "/deck?lang=fr", "", "", content.DE, LocaleFromDefault},
		{"locale-like prefix is not a locale", "/english/deck", "", "", content.DE, LocaleFromDefault},
		{"bare locale path", "/en", "", "", content.EN, LocaleFromPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LocaleCookie, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			locale, source := ResolveLocale(req, content.DE)
			assert.Equal(t, tt.wantLocale, locale)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestLocaleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LocaleMiddleware(content.DE))
	router.GET("/*path", func(c *gin.Context) {
		c.String(http.StatusOK, string(GetLocale(c)))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/en/chapters/1", nil))
	assert.Equal(t, "en", w.Body.String())
	assert.Equal(t, "en", w.Header().Get("Content-Language"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "lang=en")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deck", nil))
	assert.Equal(t, "de", w.Body.String())
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestGetLocale_Default(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, content.DefaultLocale, GetLocale(c))
}
