package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// ActivityRequest defines the data needed to create or update an
// ouderwerkgroep activity.
type ActivityRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
	Images      []string `json:"images"`
}

func ToDomainActivity(req ActivityRequest) domain.Activity {
	return domain.Activity{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Images:      req.Images,
	}
}
