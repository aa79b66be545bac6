package handlers

import (
	"net/http"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// activityHandler handles HTTP requests for ouderwerkgroep activities.
type activityHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerActivityRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &activityHandler{sync: sync}

	public.GET("/activities", h.listActivities)

	activities := admin.Group("/activities")
	{
		activities.POST("", h.createActivity)
		activities.PUT("/:id", h.updateActivity)
		activities.DELETE("/:id", h.deleteActivity)
	}
}

func (h *activityHandler) listActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot().OuderwerkgroepActivities)
}

func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddActivity(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Activity")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *activityHandler) updateActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Activity")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

func (h *activityHandler) deleteActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Activity")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
