package dto

import "github.com/degroeneboom/school_site_app/internal/core/domain"

// SiteConfigRequest replaces the site-wide settings record.
type SiteConfigRequest struct {
	SchoolName   string `json:"schoolName" binding:"required"`
	Tagline      string `json:"tagline"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone"`
	Address      string `json:"address"`
	FacebookURL  string `json:"facebookUrl" binding:"omitempty,url"`
	MenuLinkName string `json:"menuLinkName"`
	MenuLinkURL  string `json:"menuLinkUrl" binding:"omitempty,url"`
}

func ToDomainSiteConfig(req SiteConfigRequest) domain.SiteConfig {
	return domain.SiteConfig{
		SchoolName:   req.SchoolName,
		Tagline:      req.Tagline,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		FacebookURL:  req.FacebookURL,
		MenuLinkName: req.MenuLinkName,
		MenuLinkURL:  req.MenuLinkURL,
	}
}
