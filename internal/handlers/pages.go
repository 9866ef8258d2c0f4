package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetIndex returns the hello page
// (GET /)
func (h *Handler) GetIndex(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, h.pages.Hello())
}

// GetSleep returns the hello page after the configured delay
// (GET /sleep)
func (h *Handler) GetSleep(c *gin.Context) {
	timer := time.NewTimer(h.sleep)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-c.Request.Context().Done():
		zap.S().Named("page_handler").Debugw("client left during sleep", "error", c.Request.Context().Err())
		c.Abort()
		return
	}

	c.Data(http.StatusOK, contentTypeHTML, h.pages.Hello())
}

// NotFound returns the 404 page for every unknown route.
func (h *Handler) NotFound(c *gin.Context) {
	c.Data(http.StatusNotFound, contentTypeHTML, h.pages.NotFound())
}
