package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// SubmissionRequest defines the data of a public contact form submission.
type SubmissionRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func ToDomainSubmission(req SubmissionRequest) domain.Submission {
	return domain.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
}
