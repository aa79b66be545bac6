package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// AlbumRequest defines the data needed to create or update a photo album.
// Images are opaque references returned by the upload endpoint.
type AlbumRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Images      []string `json:"images"`
	ExpiryDate  string   `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
}

func ToDomainAlbum(req AlbumRequest) domain.Album {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	return domain.Album{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Images:      images,
		ExpiryDate:  req.ExpiryDate,
	}
}
