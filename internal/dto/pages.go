package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// PageRequest defines the data needed to create or update a page. The slug of
// a custom page is derived from its name; the slug and type of a system page
// are fixed and ignored on update.
type PageRequest struct {
	Name    string   `json:"name" binding:"required"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
	Active  *bool    `json:"active" binding:"required"`
	Order   int      `json:"order"`
}

// SavePagesRequest replaces the whole pages field, typically after the admin
// reorders the menu.
type SavePagesRequest struct {
	Pages []domain.Page `json:"pages" binding:"required,dive"`
}

// SaveHeroImagesRequest replaces the ordered hero image references.
type SaveHeroImagesRequest struct {
	Images []string `json:"images" binding:"required"`
}
