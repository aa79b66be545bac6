package handlers

import (
	"net/http"

	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single uploaded file at 20 MiB.
const maxUploadBytes = 20 << 20

// uploadHandler stores admin-uploaded images and documents and hands back the
// opaque reference that entity records embed.
type uploadHandler struct {
	store portsrepo.UploadStore
}

func registerUploadRoutes(admin *gin.RouterGroup, store portsrepo.UploadStore) {
	h := &uploadHandler{store: store}
	admin.POST("/uploads", h.upload)
}

// upload godoc
// @Summary Upload a file
// @Description Stores a file and returns the reference to embed in entities.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or oversized file"
// @Router /admin/uploads [post]
func (h *uploadHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing file field: " + err.Error()})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File exceeds the upload size limit"})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unreadable file: " + err.Error()})
		return
	}
	defer f.Close()

	ref, err := h.store.Save(c.Request.Context(), header.Filename, f)
	if err != nil {
		logger.Error("Failed to store upload", "error", err, "filename", header.Filename)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store file"})
		return
	}
	c.JSON(http.StatusCreated, dto.UploadResponse{Reference: ref})
}
