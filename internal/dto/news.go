package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// NewsRequest defines the data needed to create or update a news item.
type NewsRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Image      string `json:"image"`
	ExpiryDate string `json:"expiryDate" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomainNews converts the request into a domain entity without an id; the
// sync engine assigns the id at creation time.
func ToDomainNews(req NewsRequest) domain.NewsItem {
	return domain.NewsItem{
		Title:      req.Title,
		Content:    req.Content,
		Date:       req.Date,
		Image:      req.Image,
		ExpiryDate: req.ExpiryDate,
	}
}
