package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"projecthub/internal/ports/input"
)

func (h *Handler) listEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		h.fail(c, err, "errors.fetch_events_failed")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) listUpcomingEvents(c *gin.Context) {
	events, err := h.events.ListUpcomingEvents(c.Request.Context())
	if err != nil {
		h.fail(c, err, "errors.fetch_upcoming_events_failed")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) getEvent(c *gin.Context) {
	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "errors.fetch_event_failed")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *Handler) createEvent(c *gin.Context) {
	var req createEventRequest
	if !h.bind(c, &req) {
		return
	}
	event, err := h.events.CreateEvent(c.Request.Context(), input.NewEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	})
	if err != nil {
		h.fail(c, err, "errors.create_event_failed")
		return
	}
	c.JSON(http.StatusCreated, event)
}
