package domain

import (
	"fmt"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/goccy/go-json"
)

// Collection identifies one entity collection of the Document. The values
// double as the JSON field names so scoped store endpoints can address a
// collection by name.
type Collection string

const (
	CollectionNews        Collection = "news"
	CollectionEvents      Collection = "events"
	CollectionAlbums      Collection = "albums"
	CollectionTeam        Collection = "team"
	CollectionActivities  Collection = "ouderwerkgroepActivities"
	CollectionSubmissions Collection = "submissions"
	CollectionDownloads   Collection = "downloads"
	CollectionEnrollments Collection = "enrollments"
	CollectionPages       Collection = "pages"
)

// Field identifies a top-level Document field targeted by bulk replace
// operations.
type Field string

const (
	FieldConfig     Field = "config"
	FieldHeroImages Field = "heroImages"
	FieldPages      Field = "pages"
)

// Entity is one addressable record within a Document collection.
type Entity interface {
	EntityID() string
}

// Document is the single root aggregate holding all site content and
// configuration. It round-trips losslessly through JSON; field names are part
// of the storage contract and must not change.
type Document struct {
	Config                   SiteConfig   `json:"config"`
	HeroImages               []string     `json:"heroImages"`
	News                     []NewsItem   `json:"news"`
	Events                   []Event      `json:"events"`
	Albums                   []Album      `json:"albums"`
	Team                     []TeamMember `json:"team"`
	OuderwerkgroepActivities []Activity   `json:"ouderwerkgroepActivities"`
	Submissions              []Submission `json:"submissions"`
	Downloads                []Download   `json:"downloads"`
	Enrollments              []Enrollment `json:"enrollments"`
	Pages                    []Page       `json:"pages"`
}

// Clone returns a deep copy of the Document. The sync engine hands clones to
// readers so no caller can mutate engine-owned state.
func (d Document) Clone() Document {
	data, err := json.Marshal(d)
	if err != nil {
		// The Document is plain data; marshalling cannot fail for any value
		// constructed through the mutation protocol.
		panic(fmt.Sprintf("document clone: %v", err))
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("document clone: %v", err))
	}
	return out
}

// Insert appends e to collection c. The entity type must match the
// collection; a mismatch is a programming error surfaced as ErrValidation.
func (d *Document) Insert(c Collection, e Entity) error {
	switch c {
	case CollectionNews:
		item, ok := e.(NewsItem)
		if !ok {
			return typeMismatch(c, e)
		}
		d.News = append(d.News, item)
	case CollectionEvents:
		item, ok := e.(Event)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Events = append(d.Events, item)
	case CollectionAlbums:
		item, ok := e.(Album)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Albums = append(d.Albums, item)
	case CollectionTeam:
		item, ok := e.(TeamMember)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Team = append(d.Team, item)
	case CollectionActivities:
		item, ok := e.(Activity)
		if !ok {
			return typeMismatch(c, e)
		}
		d.OuderwerkgroepActivities = append(d.OuderwerkgroepActivities, item)
	case CollectionSubmissions:
		item, ok := e.(Submission)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Submissions = append(d.Submissions, item)
	case CollectionDownloads:
		item, ok := e.(Download)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Downloads = append(d.Downloads, item)
	case CollectionEnrollments:
		item, ok := e.(Enrollment)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Enrollments = append(d.Enrollments, item)
	case CollectionPages:
		item, ok := e.(Page)
		if !ok {
			return typeMismatch(c, e)
		}
		d.Pages = append(d.Pages, item)
	default:
		return fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, c)
	}
	return nil
}

// Update replaces the entity identified by id in collection c with e,
// preserving the stored id (ids are immutable). Returns ErrNotFound if no
// entity with that id exists.
func (d *Document) Update(c Collection, id string, e Entity) error {
	switch c {
	case CollectionNews:
		item, ok := e.(NewsItem)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.News {
			if d.News[i].ID == id {
				item.ID = id
				d.News[i] = item
				return nil
			}
		}
	case CollectionEvents:
		item, ok := e.(Event)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Events {
			if d.Events[i].ID == id {
				item.ID = id
				d.Events[i] = item
				return nil
			}
		}
	case CollectionAlbums:
		item, ok := e.(Album)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Albums {
			if d.Albums[i].ID == id {
				item.ID = id
				d.Albums[i] = item
				return nil
			}
		}
	case CollectionTeam:
		item, ok := e.(TeamMember)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Team {
			if d.Team[i].ID == id {
				item.ID = id
				d.Team[i] = item
				return nil
			}
		}
	case CollectionActivities:
		item, ok := e.(Activity)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.OuderwerkgroepActivities {
			if d.OuderwerkgroepActivities[i].ID == id {
				item.ID = id
				d.OuderwerkgroepActivities[i] = item
				return nil
			}
		}
	case CollectionSubmissions:
		item, ok := e.(Submission)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Submissions {
			if d.Submissions[i].ID == id {
				item.ID = id
				d.Submissions[i] = item
				return nil
			}
		}
	case CollectionDownloads:
		item, ok := e.(Download)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Downloads {
			if d.Downloads[i].ID == id {
				item.ID = id
				d.Downloads[i] = item
				return nil
			}
		}
	case CollectionEnrollments:
		item, ok := e.(Enrollment)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Enrollments {
			if d.Enrollments[i].ID == id {
				item.ID = id
				d.Enrollments[i] = item
				return nil
			}
		}
	case CollectionPages:
		item, ok := e.(Page)
		if !ok {
			return typeMismatch(c, e)
		}
		for i := range d.Pages {
			if d.Pages[i].ID == id {
				item.ID = id
				d.Pages[i] = item
				return nil
			}
		}
	default:
		return fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, c)
	}
	return fmt.Errorf("%w: %s/%s", apperrors.ErrNotFound, c, id)
}

// Delete removes the entity identified by id from collection c. Returns
// ErrNotFound if no entity with that id exists. System-page protection is
// enforced at the mutation boundary, before this is reached.
func (d *Document) Delete(c Collection, id string) error {
	switch c {
	case CollectionNews:
		for i := range d.News {
			if d.News[i].ID == id {
				d.News = append(d.News[:i], d.News[i+1:]...)
				return nil
			}
		}
	case CollectionEvents:
		for i := range d.Events {
			if d.Events[i].ID == id {
				d.Events = append(d.Events[:i], d.Events[i+1:]...)
				return nil
			}
		}
	case CollectionAlbums:
		for i := range d.Albums {
			if d.Albums[i].ID == id {
				d.Albums = append(d.Albums[:i], d.Albums[i+1:]...)
				return nil
			}
		}
	case CollectionTeam:
		for i := range d.Team {
			if d.Team[i].ID == id {
				d.Team = append(d.Team[:i], d.Team[i+1:]...)
				return nil
			}
		}
	case CollectionActivities:
		for i := range d.OuderwerkgroepActivities {
			if d.OuderwerkgroepActivities[i].ID == id {
				d.OuderwerkgroepActivities = append(d.OuderwerkgroepActivities[:i], d.OuderwerkgroepActivities[i+1:]...)
				return nil
			}
		}
	case CollectionSubmissions:
		for i := range d.Submissions {
			if d.Submissions[i].ID == id {
				d.Submissions = append(d.Submissions[:i], d.Submissions[i+1:]...)
				return nil
			}
		}
	case CollectionDownloads:
		for i := range d.Downloads {
			if d.Downloads[i].ID == id {
				d.Downloads = append(d.Downloads[:i], d.Downloads[i+1:]...)
				return nil
			}
		}
	case CollectionEnrollments:
		for i := range d.Enrollments {
			if d.Enrollments[i].ID == id {
				d.Enrollments = append(d.Enrollments[:i], d.Enrollments[i+1:]...)
				return nil
			}
		}
	case CollectionPages:
		for i := range d.Pages {
			if d.Pages[i].ID == id {
				d.Pages = append(d.Pages[:i], d.Pages[i+1:]...)
				return nil
			}
		}
	default:
		return fmt.Errorf("%w: unknown collection %q", apperrors.ErrValidation, c)
	}
	return fmt.Errorf("%w: %s/%s", apperrors.ErrNotFound, c, id)
}

// FindPage returns the page with the given id, or nil.
func (d *Document) FindPage(id string) *Page {
	for i := range d.Pages {
		if d.Pages[i].ID == id {
			return &d.Pages[i]
		}
	}
	return nil
}

// FindEnrollment returns the enrollment with the given id, or nil.
func (d *Document) FindEnrollment(id string) *Enrollment {
	for i := range d.Enrollments {
		if d.Enrollments[i].ID == id {
			return &d.Enrollments[i]
		}
	}
	return nil
}

// FindSubmission returns the submission with the given id, or nil.
func (d *Document) FindSubmission(id string) *Submission {
	for i := range d.Submissions {
		if d.Submissions[i].ID == id {
			return &d.Submissions[i]
		}
	}
	return nil
}

// ReplaceField replaces one top-level Document field wholesale. Used by bulk
// save operations (saveConfig, savePages, hero image reordering).
func (d *Document) ReplaceField(f Field, value any) error {
	switch f {
	case FieldConfig:
		cfg, ok := value.(SiteConfig)
		if !ok {
			return fmt.Errorf("%w: field %q expects SiteConfig, got %T", apperrors.ErrValidation, f, value)
		}
		d.Config = cfg
	case FieldHeroImages:
		imgs, ok := value.([]string)
		if !ok {
			return fmt.Errorf("%w: field %q expects []string, got %T", apperrors.ErrValidation, f, value)
		}
		d.HeroImages = imgs
	case FieldPages:
		pages, ok := value.([]Page)
		if !ok {
			return fmt.Errorf("%w: field %q expects []Page, got %T", apperrors.ErrValidation, f, value)
		}
		d.Pages = pages
	default:
		return fmt.Errorf("%w: unknown field %q", apperrors.ErrValidation, f)
	}
	return nil
}

func typeMismatch(c Collection, e Entity) error {
	return fmt.Errorf("%w: entity type %T does not belong to collection %q", apperrors.ErrValidation, e, c)
}
