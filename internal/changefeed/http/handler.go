package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawhub/pet-care-backend/internal/changefeed"
)

// streamableTables is the set of tables clients may subscribe to.
var streamableTables = map[string]bool{
	"vet_bookings":          true,
	"pets":                  true,
	"cart_items":            true,
	"messages":              true,
	"orders":                true,
	"vaccination_schedules": true,
}

type Handler struct {
	hub *changefeed.Hub
}

func NewHandler(hub *changefeed.Hub) *Handler {
	return &Handler{hub: hub}
}

// Stream serves a server-sent-event stream of change notifications for one
// table. The subscription is torn down when the client disconnects.
func (h *Handler) Stream(c *gin.Context) {
	table := c.Param("table")
	if !streamableTables[table] {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
		return
	}

	ch := h.hub.Subscribe(table)
	defer h.hub.Unsubscribe(table, ch)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
