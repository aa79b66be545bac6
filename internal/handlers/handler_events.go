package handlers

import (
	"net/http"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// eventHandler handles HTTP requests for calendar events.
type eventHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerEventRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &eventHandler{sync: sync}

	public.GET("/events", h.listEvents)

	events := admin.Group("/events")
	{
		events.POST("", h.createEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
	}
}

func (h *eventHandler) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot().Events)
}

func (h *eventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddEvent(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Event")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Event")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Event")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
