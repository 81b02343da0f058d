package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers calendar-view routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/calendar", h.View)
}
