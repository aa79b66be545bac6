package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// MutationResponse wraps a mutation outcome. Synced false means the change is
// durable locally but the remote store did not confirm it ("saved locally").
type MutationResponse struct {
	Synced bool `json:"synced"`
	Entity any  `json:"entity,omitempty"`
}

// PublicSiteResponse is the read-side view served to the public site:
// expired news and albums filtered out, inactive pages hidden, and the
// admin-only collections (submissions, enrollments) omitted entirely.
type PublicSiteResponse struct {
	Config     domain.SiteConfig   `json:"config"`
	HeroImages []string            `json:"heroImages"`
	News       []domain.NewsItem   `json:"news"`
	Events     []domain.Event      `json:"events"`
	Albums     []domain.Album      `json:"albums"`
	Team       []domain.TeamMember `json:"team"`
	Activities []domain.Activity   `json:"ouderwerkgroepActivities"`
	Downloads  []domain.Download   `json:"downloads"`
	Pages      []domain.Page       `json:"pages"`
}

// UploadResponse returns the opaque reference to a stored upload.
type UploadResponse struct {
	Reference string `json:"reference"`
}
