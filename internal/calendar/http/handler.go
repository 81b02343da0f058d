package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okabrie/appointment-booking-backend/internal/calendar"
	"github.com/okabrie/appointment-booking-backend/internal/pkg/response"
)

type Handler struct {
	service calendar.Service
}

func NewHandler(service calendar.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) View(c *gin.Context) {
	var req ViewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	from, err := time.Parse(dateFormat, req.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(dateFormat, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
		return
	}

	events, err := h.service.View(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = NewEventResponse(e)
	}

	c.JSON(http.StatusOK, gin.H{"events": items})
}
