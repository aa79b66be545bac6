package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// DownloadRequest defines the data needed to create or update a downloadable
// file entry. File is the opaque reference returned by the upload endpoint.
type DownloadRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	File     string `json:"file" binding:"required"`
}

func ToDomainDownload(req DownloadRequest) domain.Download {
	return domain.Download{
		Title:    req.Title,
		Category: req.Category,
		File:     req.File,
	}
}
