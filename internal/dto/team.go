package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// TeamMemberRequest defines the data needed to create or update a team member.
type TeamMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Group string `json:"group"`
	Photo string `json:"photo"`
}

func ToDomainTeamMember(req TeamMemberRequest) domain.TeamMember {
	return domain.TeamMember{
		Name:  req.Name,
		Role:  req.Role,
		Group: req.Group,
		Photo: req.Photo,
	}
}
