package handlers

import (
	"net/http"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// submissionHandler handles contact form submissions. The create endpoint is
// public (the website contact form posts here); listing and marking as read
// are admin-only.
type submissionHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerSubmissionRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &submissionHandler{sync: sync}

	public.POST("/submissions", h.createSubmission)

	submissions := admin.Group("/submissions")
	{
		submissions.GET("", h.listSubmissions)
		submissions.PUT("/:id/read", h.markSubmissionRead)
	}
}

// createSubmission godoc
// @Summary Submit a contact form message
// @Description Accepts a contact form submission from the public website
// @Tags Submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionRequest true "Submission details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /submissions [post]
func (h *submissionHandler) createSubmission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddSubmission(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Submission")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *submissionHandler) listSubmissions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SortedSubmissions(h.sync.Snapshot()))
}

// markSubmissionRead godoc
// @Summary Mark a submission as read
// @Description Transitions a submission from new to read. Marking an already
// @Description read submission again is a no-op.
// @Tags Submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id}/read [put]
func (h *submissionHandler) markSubmissionRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.MarkSubmissionRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Submission")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
