package handlers

import (
	"net/http"
	"time"

	"github.com/cyphera/cyphera-pitch/internal/interfaces"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	source interfaces.ContentSource
}

// HealthResponse reports liveness and when content was last loaded.
type HealthResponse struct {
	Status   string     `json:"status"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

func NewHealthHandler(source interfaces.ContentSource) *HealthHandler {
	return &HealthHandler{source: source}
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running and content is loaded
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.source == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
		return
	}
	loadedAt := h.source.LoadedAt()
	if loadedAt.IsZero() {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "loading"})
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", LoadedAt: &loadedAt})
}
