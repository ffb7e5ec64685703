package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-pitch/internal/chapters"
	"github.com/cyphera/cyphera-pitch/internal/constants"
	"github.com/cyphera/cyphera-pitch/internal/content"
	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/cyphera/cyphera-pitch/internal/logger"
	"github.com/cyphera/cyphera-pitch/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// handleRenderError maps a render failure to a status code. Unknown
// chapters are 404; nothing falls back to a default chapter.
func handleRenderError(c *gin.Context, err error) {
	if chapters.IsNotFound(err) {
		sendError(c, http.StatusNotFound, constants.ChapterNotFound, err)
		return
	}
	sendError(c, http.StatusInternalServerError, constants.RenderFailed, err)
}

// bundleFor returns the content bundle of the request's locale.
func bundleFor(c *gin.Context, source interfaces.ContentSource) *content.Bundle {
	return source.Bundle(middleware.GetLocale(c))
}
