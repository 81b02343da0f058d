package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers offering-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/offerings")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		// Per-date slot grid for the offering.
		group.GET("/:id/availability", h.Availability)
	}
}
