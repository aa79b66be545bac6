package handlers

import (
	"net/http"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// downloadHandler handles HTTP requests for downloadable files.
type downloadHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerDownloadRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &downloadHandler{sync: sync}

	public.GET("/downloads", h.listDownloads)

	downloads := admin.Group("/downloads")
	{
		downloads.POST("", h.createDownload)
		downloads.PUT("/:id", h.updateDownload)
		downloads.DELETE("/:id", h.deleteDownload)
	}
}

func (h *downloadHandler) listDownloads(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot().Downloads)
}

func (h *downloadHandler) createDownload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddDownload(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Download")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *downloadHandler) updateDownload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateDownload(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Download")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

func (h *downloadHandler) deleteDownload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteDownload(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Download")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
