package middleware

import (
	"net/http"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/gin-gonic/gin"
)

const (
	LocaleCookie = "lang"
	LocaleQuery  = "lang"
	localeKey    = "locale"
	cookieMaxAge = 365 * 24 * 60 * 60
)

// Locale sources, highest priority first.
const (
	LocaleFromPath    = "path"
	LocaleFromQuery   = "query"
	LocaleFromCookie  = "cookie"
	LocaleFromHeader  = "accept-language"
	LocaleFromDefault = "default"
)

// ResolveLocale picks the request locale from the path prefix, the lang
// query parameter, the lang cookie, Accept-Language and finally fallback.
func ResolveLocale(r *http.Request, fallback content.Locale) (content.Locale, string) {
	if seg := firstSegment(r.URL.Path); seg != "" {
		if l, ok := exactLocale(seg); ok {
			return l, LocaleFromPath
		}
	}
	if l, ok := content.ParseLocale(r.URL.Query().Get(LocaleQuery)); ok {
		return l, LocaleFromQuery
	}
	if cookie, err := r.Cookie(LocaleCookie); err == nil {
		if l, ok := content.ParseLocale(cookie.Value); ok {
			return l, LocaleFromCookie
		}
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		return content.Negotiate(header, fallback), LocaleFromHeader
	}
	return fallback, LocaleFromDefault
}

// LocaleMiddleware stores the resolved locale on the context. An explicit
// choice via path or query is remembered in the lang cookie.
func LocaleMiddleware(fallback content.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale, source := ResolveLocale(c.Request, fallback)
		c.Set(localeKey, locale)
		if source == LocaleFromPath || source == LocaleFromQuery {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(LocaleCookie, string(locale), cookieMaxAge, "/", "", false, false)
		}
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

// GetLocale returns the locale stored by LocaleMiddleware, or the default
// locale when none was stored.
func GetLocale(c *gin.Context) content.Locale {
	if v, ok := c.Get(localeKey); ok {
		if l, ok := v.(content.Locale); ok {
			return l
		}
	}
	return content.DefaultLocale
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// exactLocale accepts only the bare supported tags, so "/en-us/..." is not
// treated as a locale prefix.
func exactLocale(seg string) (content.Locale, bool) {
	for _, l := range content.Supported {
		if seg == string(l) {
			return l, true
		}
	}
	return "", false
}
