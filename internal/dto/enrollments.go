package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// EnrollmentRequest defines the data of a public enrollment form submission.
type EnrollmentRequest struct {
	ChildName  string `json:"childName" binding:"required"`
	BirthDate  string `json:"birthDate" binding:"required,datetime=2006-01-02,pastdate"`
	ParentName string `json:"parentName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

// UpdateEnrollmentStatusRequest sets the processing state of an enrollment.
// Any state is reachable from any other; the transition is always an explicit
// admin action.
type UpdateEnrollmentStatusRequest struct {
	Status domain.EnrollmentStatus `json:"status" binding:"required,oneof=new in_progress fulfilled not_fulfilled"`
}

func ToDomainEnrollment(req EnrollmentRequest) domain.Enrollment {
	return domain.Enrollment{
		ChildName:  req.ChildName,
		BirthDate:  req.BirthDate,
		ParentName: req.ParentName,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
	}
}
