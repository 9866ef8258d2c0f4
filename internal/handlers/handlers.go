package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kubev2v/taskpool/internal/services"
)

const contentTypeHTML = "text/html; charset=utf-8"

type Handler struct {
	pages *services.Pages
	sleep time.Duration
}

func New(pages *services.Pages, sleep time.Duration) *Handler {
	return &Handler{
		pages: pages,
		sleep: sleep,
	}
}

// RegisterRoutes registers the page routes on router.
func (h *Handler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", h.GetIndex)
	router.GET("/sleep", h.GetSleep)
}
