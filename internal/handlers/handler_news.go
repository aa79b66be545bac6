package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// newsHandler handles HTTP requests for news items.
type newsHandler struct {
	sync portssvc.SyncSvcFacade
}

func newNewsHandler(sync portssvc.SyncSvcFacade) *newsHandler {
	return &newsHandler{sync: sync}
}

// registerNewsRoutes registers the public news listing and the admin CRUD.
func registerNewsRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := newNewsHandler(sync)

	public.GET("/news", h.listActiveNews)

	news := admin.Group("/news")
	{
		news.POST("", h.createNews)
		news.PUT("/:id", h.updateNews)
		news.DELETE("/:id", h.deleteNews)
	}
}

// listActiveNews godoc
// @Summary List active news
// @Description Returns unexpired news items sorted by date descending. The filter is evaluated against the current time on every request.
// @Tags news
// @Produce json
// @Success 200 {array} domain.NewsItem
// @Router /news [get]
func (h *newsHandler) listActiveNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.ActiveNews(time.Now()))
}

// createNews godoc
// @Summary Create a news item
// @Tags news
// @Accept json
// @Produce json
// @Param news body dto.NewsRequest true "News item"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/news [post]
func (h *newsHandler) createNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddNews(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "News item")
		return
	}

	logger.Info("News item created", slog.String("id", item.ID), slog.Bool("synced", res.Synced))
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

// updateNews godoc
// @Summary Update a news item
// @Tags news
// @Accept json
// @Produce json
// @Param id path string true "News item ID"
// @Param news body dto.NewsRequest true "News item"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/news/{id} [put]
func (h *newsHandler) updateNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.NewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdateNews(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "News item")
		return
	}

	c.JSON(http.StatusOK, mutationResponse(res, item))
}

// deleteNews godoc
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/news/{id} [delete]
func (h *newsHandler) deleteNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeleteNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "News item")
		return
	}

	logger.Info("News item deleted", slog.String("id", c.Param("id")), slog.Bool("synced", res.Synced))
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
