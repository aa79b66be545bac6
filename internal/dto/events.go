package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// EventRequest defines the data needed to create or update a calendar event.
type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
}

func ToDomainEvent(req EventRequest) domain.Event {
	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}
}
