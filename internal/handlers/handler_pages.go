package handlers

import (
	"net/http"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pageHandler handles the site pages. The public listing only shows active
// pages; the admin side sees everything, including deactivated ones.
type pageHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerPageRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &pageHandler{sync: sync}

	public.GET("/pages", h.listActivePages)
	public.GET("/pages/:slug", h.getPageBySlug)

	pages := admin.Group("/pages")
	{
		pages.GET("", h.listAllPages)
		pages.POST("", h.createPage)
		pages.PUT("/:id", h.updatePage)
		pages.DELETE("/:id", h.deletePage)
	}
}

func (h *pageHandler) listActivePages(c *gin.Context) {
	c.JSON(http.StatusOK, domain.ActivePages(h.sync.Snapshot()))
}

func (h *pageHandler) getPageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	for _, p := range domain.ActivePages(h.sync.Snapshot()) {
		if p.Slug == slug {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, ErrorResponse{Error: "Page not found"})
}

func (h *pageHandler) listAllPages(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot().Pages)
}

// createPage godoc
// @Summary Create a custom page
// @Description Adds a new custom page. The slug is derived from the name and
// @Description made unique against existing pages.
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page body dto.PageRequest true "Page details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /admin/pages [post]
func (h *pageHandler) createPage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.AddPage(c.Request.Context(), req)
	if err != nil {
		respondMutationError(c, logger, err, "Page")
		return
	}
	c.JSON(http.StatusCreated, mutationResponse(res, item))
}

// updatePage godoc
// @Summary Update a page
// @Description Updates a page. System pages keep their name and slug; only
// @Description their content, images, active flag and order can change.
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param page body dto.PageRequest true "Page details"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} handlers.ErrorResponse "Page not found"
// @Router /admin/pages/{id} [put]
func (h *pageHandler) updatePage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	item, res, err := h.sync.UpdatePage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondMutationError(c, logger, err, "Page")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, item))
}

// deletePage godoc
// @Summary Delete a custom page
// @Description Removes a custom page. System pages cannot be deleted.
// @Tags Pages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} handlers.ErrorResponse "Page not found"
// @Failure 422 {object} handlers.ErrorResponse "Page is a system page"
// @Router /admin/pages/{id} [delete]
func (h *pageHandler) deletePage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	res, err := h.sync.DeletePage(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMutationError(c, logger, err, "Page")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
