package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// albumHandler handles HTTP requests for photo albums.
type albumHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerAlbumRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &albumHandler{sync: sync}

	// Public listing applies the expiry filter; the admin panel reads the
	// unfiltered collection through the full document endpoint.
	public.GET("/albums", h.listActiveAlbums)

	albums := admin.Group("/albums")
	{
		albums.POST("", h.createAlbum)
		albums.PUT("/:id", h.updateAlbum)
		albums.DELETE("/:id", h.deleteAlbum)
	}
}

func (h *albumHandler) listActiveAlbums(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.ActiveAlbums(time.Now()))
}

func (h *albumHandler) createAlbum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddAlbum(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Album")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

func (h *albumHandler) updateAlbum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateAlbum(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Album")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

func (h *albumHandler) deleteAlbum(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteAlbum(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Album")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
