package handlers

import (
	"net/http"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// enrollmentHandler handles enrollment requests from prospective parents.
// Creation is public; listing and status changes are admin-only.
type enrollmentHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerEnrollmentRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &enrollmentHandler{sync: sync}

	public.POST("/enrollments", h.createEnrollment)

	enrollments := admin.Group("/enrollments")
	{
		enrollments.GET("", h.listEnrollments)
		enrollments.PUT("/:id/status", h.updateEnrollmentStatus)
	}
}

// createEnrollment godoc
// @Summary Submit an enrollment request
// @Description Accepts an enrollment request for a child from the public website
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param enrollment body dto.EnrollmentRequest true "Enrollment details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /enrollments [post]
func (h *enrollmentHandler) createEnrollment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddEnrollment(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Enrollment")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *enrollmentHandler) listEnrollments(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SortedEnrollments(h.sync.Snapshot()))
}

// updateEnrollmentStatus godoc
// @Summary Update the status of an enrollment
// @Description Sets the workflow status of an enrollment. All transitions
// @Description between the known statuses are allowed.
// @Tags Enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Enrollment ID"
// @Param status body dto.UpdateEnrollmentStatusRequest true "New status"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid status"
// @Failure 404 {object} handlers.ErrorResponse "Enrollment not found"
// @Router /admin/enrollments/{id}/status [put]
func (h *enrollmentHandler) updateEnrollmentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.sync.UpdateEnrollmentStatus(c.Request.Context(), c.Param("id"), domain.EnrollmentStatus(req.Status))
	if err != nil {
		respondMutationError(c, logger, err, "Enrollment")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
