package handlers

import (
	"net/http"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// teamHandler handles HTTP requests for team members.
type teamHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerTeamRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &teamHandler{sync: sync}

	public.GET("/team", h.listTeam)

	team := admin.Group("/team")
	{
		team.POST("", h.createTeamMember)
		team.PUT("/:id", h.updateTeamMember)
		team.DELETE("/:id", h.deleteTeamMember)
	}
}

func (h *teamHandler) listTeam(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot().Team)
}

func (h *teamHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddTeamMember(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Team member")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *teamHandler) updateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateTeamMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Team member")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

func (h *teamHandler) deleteTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteTeamMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Team member")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
