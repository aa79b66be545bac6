package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// siteHandler serves the whole-document endpoints: the filtered public view,
// the raw admin view, the bulk field replacements and the change stream.
type siteHandler struct {
	sync portssvc.SyncSvcFacade
}

func registerSiteRoutes(public, admin *gin.RouterGroup, sync portssvc.SyncSvcFacade) {
	h := &siteHandler{sync: sync}

	public.GET("/site", h.getPublicSite)
	public.GET("/site/stream", h.streamChanges)

	site := admin.Group("/site")
	{
		site.GET("", h.getAdminSite)
		site.PUT("", h.replaceSite)
		site.PUT("/config", h.saveConfig)
		site.PUT("/pages", h.savePages)
		site.PUT("/hero-images", h.saveHeroImages)
	}
}

// getPublicSite godoc
// @Summary Get the public site content
// @Description Returns the site content visible to visitors. Expired news and
// @Description albums and inactive pages are filtered out; submissions and
// @Description enrollments are never included.
// @Tags Site
// @Produce json
// @Success 200 {object} dto.PublicSiteResponse
// @Router /site [get]
func (h *siteHandler) getPublicSite(c *gin.Context) {
	doc := h.sync.Snapshot()
	now := time.Now()
	c.JSON(http.StatusOK, dto.PublicSiteResponse{
		Config:     doc.Config,
		HeroImages: doc.HeroImages,
		News:       domain.ActiveNews(doc, now),
		Events:     doc.Events,
		Albums:     domain.ActiveAlbums(doc, now),
		Team:       doc.Team,
		Activities: doc.OuderwerkgroepActivities,
		Downloads:  doc.Downloads,
		Pages:      domain.ActivePages(doc),
	})
}

// streamChanges delivers change notifications as server-sent events. Each
// mutation produces one event; a client that falls behind misses events
// rather than slowing mutations down, so consumers should re-fetch the
// document on every event instead of replaying them.
func (h *siteHandler) streamChanges(c *gin.Context) {
	id, ch := h.sync.Subscribe()
	defer h.sync.Unsubscribe(id)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("change", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// getAdminSite godoc
// @Summary Get the full site document
// @Description Returns the complete unfiltered document, including inactive
// @Description pages, expired entries, submissions and enrollments.
// @Tags Site
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Document
// @Router /admin/site [get]
func (h *siteHandler) getAdminSite(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Snapshot())
}

// replaceSite godoc
// @Summary Replace the full site document
// @Description Replaces the entire document in one write. Intended for
// @Description restores and migrations, not day-to-day editing.
// @Tags Site
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param document body domain.Document true "Full document"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Router /admin/site [put]
func (h *siteHandler) replaceSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var doc domain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.sync.ReplaceDocument(c.Request.Context(), doc)
	if err != nil {
		respondMutationError(c, logger, err, "Document")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}

func (h *siteHandler) saveConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.sync.SaveConfig(c.Request.Context(), dto.ToDomainSiteConfig(req))
	if err != nil {
		respondMutationError(c, logger, err, "Site config")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}

// savePages replaces the page list as a whole, which is how the admin UI
// persists reordering. The service rejects a list that drops a system page.
func (h *siteHandler) savePages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SavePagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.sync.SavePages(c.Request.Context(), req.Pages)
	if err != nil {
		respondMutationError(c, logger, err, "Pages")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}

func (h *siteHandler) saveHeroImages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveHeroImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	res, err := h.sync.SaveHeroImages(c.Request.Context(), req.Images)
	if err != nil {
		respondMutationError(c, logger, err, "Hero images")
		return
	}
	c.JSON(http.StatusOK, mutationResponse(res, nil))
}
