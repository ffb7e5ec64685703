package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/cyphera/cyphera-pitch/internal/constants"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	AccessCodeHeader = "X-Access-Code"
	AccessCodeQuery  = "code"
	AccessCookie     = "pitch_access"
)

// AccessGate requires the configured access code on every route except the
// health check. An empty code disables the gate. The code is accepted from
// the X-Access-Code header, the code query parameter or the cookie the
// query parameter sets. Denied HTML requests are handed to denied, which
// must write a 401; API requests get a JSON 401.
func AccessGate(code string, denied gin.HandlerFunc) gin.HandlerFunc {
	if code == "" {
		return func(c *gin.Context) { c.Next() }
	}
	digest := accessDigest(code)

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if matches(c.GetHeader(AccessCodeHeader), code) {
			c.Next()
			return
		}
		if q := c.Query(AccessCodeQuery); q != "" && matches(q, code) {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(AccessCookie, digest, cookieMaxAge, "/", "", false, true)
			c.Next()
			return
		}
		if cookie, err := c.Cookie(AccessCookie); err == nil && matches(cookie, digest) {
			c.Next()
			return
		}

		logger.Info("Access denied",
			zap.String("path", c.Request.URL.Path),
			zap.String("correlation_id", GetCorrelationID(c)),
		)
		if denied != nil && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			denied(c)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":          constants.AccessDenied,
			"correlation_id": GetCorrelationID(c),
		})
	}
}

func accessDigest(code string) string {
	sum := sha256.Sum256([]byte("pitch-access:" + code))
	return hex.EncodeToString(sum[:])
}

func matches(got, want string) bool {
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
