package domain

// SeedDocument returns the built-in default Document used when neither the
// remote store nor the local cache yields one. A fresh disconnected
// deployment renders a complete site from these defaults.
func SeedDocument() Document {
	return Document{
		Config: SiteConfig{
			SchoolName:   "Basisschool De Groene Boom",
			Tagline:      "Samen groeien, samen leren",
			ContactEmail: "info@degroeneboom.be",
			ContactPhone: "+32 9 123 45 67",
			Address:      "Schoolstraat 12, 9000 Gent",
			FacebookURL:  "https://www.facebook.com/degroeneboom",
			MenuLinkName: "Smartschool",
			MenuLinkURL:  "https://degroeneboom.smartschool.be",
		},
		HeroImages: []string{
			"/uploads/hero/speelplaats.jpg",
			"/uploads/hero/klaslokaal.jpg",
			"/uploads/hero/schoolpoort.jpg",
		},
		News:        []NewsItem{},
		Events:      []Event{},
		Albums:      []Album{},
		Team:        []TeamMember{},
		Submissions: []Submission{},
		Downloads:   []Download{},
		Enrollments: []Enrollment{},

		OuderwerkgroepActivities: []Activity{},

		Pages: []Page{
			{ID: "page-home", Type: PageTypeSystem, Name: "Home", Slug: "home", Active: true, Order: 0},
			{ID: "page-team", Type: PageTypeSystem, Name: "Ons team", Slug: "team", Active: true, Order: 1},
			{ID: "page-kalender", Type: PageTypeSystem, Name: "Kalender", Slug: "kalender", Active: true, Order: 2},
			{ID: "page-fotoalbums", Type: PageTypeSystem, Name: "Foto's", Slug: "fotos", Active: true, Order: 3},
			{ID: "page-ouderwerkgroep", Type: PageTypeSystem, Name: "Ouderwerkgroep", Slug: "ouderwerkgroep", Active: true, Order: 4},
			{ID: "page-downloads", Type: PageTypeSystem, Name: "Downloads", Slug: "downloads", Active: true, Order: 5},
			{ID: "page-inschrijven", Type: PageTypeSystem, Name: "Inschrijven", Slug: "inschrijven", Active: true, Order: 6},
			{ID: "page-contact", Type: PageTypeSystem, Name: "Contact", Slug: "contact", Active: true, Order: 7},
		},
	}
}

// MergeOverDefaults overlays remote onto a seed Document field by field,
// never letting an empty remote field overwrite a non-empty default. This is
// the deliberate "never regress to emptiness" policy for the remote read: a
// remote store that answers with a blank collection or blank config value
// does not blank out the site. The local cache is exempt; its contents were
// written by this engine, so an empty field there is a deliberate edit.
func MergeOverDefaults(seed, remote Document) Document {
	out := seed

	out.Config = mergeConfig(seed.Config, remote.Config)

	if len(remote.HeroImages) > 0 {
		out.HeroImages = remote.HeroImages
	}
	if len(remote.News) > 0 {
		out.News = remote.News
	}
	if len(remote.Events) > 0 {
		out.Events = remote.Events
	}
	if len(remote.Albums) > 0 {
		out.Albums = remote.Albums
	}
	if len(remote.Team) > 0 {
		out.Team = remote.Team
	}
	if len(remote.OuderwerkgroepActivities) > 0 {
		out.OuderwerkgroepActivities = remote.OuderwerkgroepActivities
	}
	if len(remote.Submissions) > 0 {
		out.Submissions = remote.Submissions
	}
	if len(remote.Downloads) > 0 {
		out.Downloads = remote.Downloads
	}
	if len(remote.Enrollments) > 0 {
		out.Enrollments = remote.Enrollments
	}
	if len(remote.Pages) > 0 {
		out.Pages = remote.Pages
	}

	return out
}

func mergeConfig(seed, remote SiteConfig) SiteConfig {
	out := seed
	if remote.SchoolName != "" {
		out.SchoolName = remote.SchoolName
	}
	if remote.Tagline != "" {
		out.Tagline = remote.Tagline
	}
	if remote.ContactEmail != "" {
		out.ContactEmail = remote.ContactEmail
	}
	if remote.ContactPhone != "" {
		out.ContactPhone = remote.ContactPhone
	}
	if remote.Address != "" {
		out.Address = remote.Address
	}
	if remote.FacebookURL != "" {
		out.FacebookURL = remote.FacebookURL
	}
	if remote.MenuLinkName != "" {
		out.MenuLinkName = remote.MenuLinkName
	}
	if remote.MenuLinkURL != "" {
		out.MenuLinkURL = remote.MenuLinkURL
	}
	return out
}
