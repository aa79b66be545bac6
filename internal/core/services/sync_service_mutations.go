package services

import (
	"context"
	"fmt"
	"time"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/utils"
)

// The per-collection operations below are thin wrappers over the shared
// four-step protocol in apply. Each assigns ids and fills server-side fields,
// checks the preconditions that must reject before any state changes, and
// delegates.

func (s *SyncService) AddNews(ctx context.Context, req dto.NewsRequest) (*domain.NewsItem, portssvc.MutationResult, error) {
	item := dto.ToDomainNews(req)
	item.ID = utils.NewEntityID()
	res, err := s.apply(ctx, domain.Insert(domain.CollectionNews, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateNews(ctx context.Context, id string, req dto.NewsRequest) (*domain.NewsItem, portssvc.MutationResult, error) {
	item := dto.ToDomainNews(req)
	item.ID = id
	res, err := s.apply(ctx, domain.Update(domain.CollectionNews, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteNews(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionNews, id))
}

func (s *SyncService) AddEvent(ctx context.Context, req dto.EventRequest) (*domain.Event, portssvc.MutationResult, error) {
	item := dto.ToDomainEvent(req)
	item.ID = utils.NewEntityID()
	res, err := s.apply(ctx, domain.Insert(domain.CollectionEvents, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateEvent(ctx context.Context, id string, req dto.EventRequest) (*domain.Event, portssvc.MutationResult, error) {
	item := dto.ToDomainEvent(req)
	item.ID = id
	res, err := s.apply(ctx, domain.Update(domain.CollectionEvents, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteEvent(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionEvents, id))
}

func (s *SyncService) AddAlbum(ctx context.Context, req dto.AlbumRequest) (*domain.Album, portssvc.MutationResult, error) {
	item := dto.ToDomainAlbum(req)
	item.ID = utils.NewEntityID()
	res, err := s.apply(ctx, domain.Insert(domain.CollectionAlbums, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateAlbum(ctx context.Context, id string, req dto.AlbumRequest) (*domain.Album, portssvc.MutationResult, error) {
	item := dto.ToDomainAlbum(req)
	item.ID = id
	res, err := s.apply(ctx, domain.Update(domain.CollectionAlbums, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteAlbum(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionAlbums, id))
}

func (s *SyncService) AddTeamMember(ctx context.Context, req dto.TeamMemberRequest) (*domain.TeamMember, portssvc.MutationResult, error) {
	item := dto.ToDomainTeamMember(req)
	item.ID = utils.NewEntityID()
	res, err := s.apply(ctx, domain.Insert(domain.CollectionTeam, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateTeamMember(ctx context.Context, id string, req dto.TeamMemberRequest) (*domain.TeamMember, portssvc.MutationResult, error) {
	item := dto.ToDomainTeamMember(req)
	item.ID = id
	res, err := s.apply(ctx, domain.Update(domain.CollectionTeam, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteTeamMember(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionTeam, id))
}

func (s *SyncService) AddActivity(ctx context.Context, req dto.ActivityRequest) (*domain.Activity, portssvc.MutationResult, error) {
	item := dto.ToDomainActivity(req)
	item.ID = utils.NewEntityID()
	res, err := s.apply(ctx, domain.Insert(domain.CollectionActivities, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateActivity(ctx context.Context, id string, req dto.ActivityRequest) (*domain.Activity, portssvc.MutationResult, error) {
	item := dto.ToDomainActivity(req)
	item.ID = id
	res, err := s.apply(ctx, domain.Update(domain.CollectionActivities, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteActivity(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionActivities, id))
}

func (s *SyncService) AddDownload(ctx context.Context, req dto.DownloadRequest) (*domain.Download, portssvc.MutationResult, error) {
	item := dto.ToDomainDownload(req)
	item.ID = utils.NewEntityID()
	item.UploadedAt = s.now().UTC().Format(time.RFC3339)
	res, err := s.apply(ctx, domain.Insert(domain.CollectionDownloads, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) UpdateDownload(ctx context.Context, id string, req dto.DownloadRequest) (*domain.Download, portssvc.MutationResult, error) {
	item := dto.ToDomainDownload(req)
	item.ID = id
	existing := s.Snapshot()
	for _, d := range existing.Downloads {
		if d.ID == id {
			item.UploadedAt = d.UploadedAt
		}
	}
	res, err := s.apply(ctx, domain.Update(domain.CollectionDownloads, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

func (s *SyncService) DeleteDownload(ctx context.Context, id string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.Delete(domain.CollectionDownloads, id))
}

func (s *SyncService) AddSubmission(ctx context.Context, req dto.SubmissionRequest) (*domain.Submission, portssvc.MutationResult, error) {
	item := dto.ToDomainSubmission(req)
	item.ID = utils.NewEntityID()
	item.SubmittedAt = s.now().UTC().Format(time.RFC3339)
	item.Status = domain.SubmissionStatusNew
	res, err := s.apply(ctx, domain.Insert(domain.CollectionSubmissions, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

// MarkSubmissionRead performs the only legal submission transition,
// new -> read. Marking an already-read submission is a no-op: nothing is
// written anywhere, so the result reports Synced false rather than claiming
// a remote confirmation that never happened.
func (s *SyncService) MarkSubmissionRead(ctx context.Context, id string) (portssvc.MutationResult, error) {
	s.mu.RLock()
	existing := s.doc.FindSubmission(id)
	var item domain.Submission
	if existing != nil {
		item = *existing
	}
	s.mu.RUnlock()

	if existing == nil {
		return portssvc.MutationResult{}, fmt.Errorf("%w: submission %s", apperrors.ErrNotFound, id)
	}
	if item.Status == domain.SubmissionStatusRead {
		return portssvc.MutationResult{}, nil
	}

	item.Status = domain.SubmissionStatusRead
	return s.apply(ctx, domain.Update(domain.CollectionSubmissions, id, item))
}

func (s *SyncService) AddEnrollment(ctx context.Context, req dto.EnrollmentRequest) (*domain.Enrollment, portssvc.MutationResult, error) {
	item := dto.ToDomainEnrollment(req)
	item.ID = utils.NewEntityID()
	item.SubmittedAt = s.now().UTC().Format(time.RFC3339)
	item.Status = domain.EnrollmentStatusNew
	res, err := s.apply(ctx, domain.Insert(domain.CollectionEnrollments, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

// UpdateEnrollmentStatus sets the processing state of an enrollment. Every
// transition is an explicit admin action; any state is reachable from any
// other. No other field of the enrollment changes.
func (s *SyncService) UpdateEnrollmentStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (portssvc.MutationResult, error) {
	if !domain.ValidEnrollmentStatus(status) {
		return portssvc.MutationResult{}, fmt.Errorf("%w: unknown enrollment status %q", apperrors.ErrValidation, status)
	}

	s.mu.RLock()
	existing := s.doc.FindEnrollment(id)
	var item domain.Enrollment
	if existing != nil {
		item = *existing
	}
	s.mu.RUnlock()

	if existing == nil {
		return portssvc.MutationResult{}, fmt.Errorf("%w: enrollment %s", apperrors.ErrNotFound, id)
	}

	item.Status = status
	return s.apply(ctx, domain.Update(domain.CollectionEnrollments, id, item))
}

// AddPage creates a custom page. System pages exist only in the seed; they
// are never created through the API. The slug derives from the name and is
// de-duplicated against existing pages.
func (s *SyncService) AddPage(ctx context.Context, req dto.PageRequest) (*domain.Page, portssvc.MutationResult, error) {
	item := domain.Page{
		ID:      utils.NewEntityID(),
		Type:    domain.PageTypeCustom,
		Name:    req.Name,
		Content: req.Content,
		Images:  req.Images,
		Active:  req.Active == nil || *req.Active,
		Order:   req.Order,
	}
	item.Slug = s.uniqueSlug(utils.Slugify(req.Name), item.ID)

	res, err := s.apply(ctx, domain.Insert(domain.CollectionPages, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

// UpdatePage edits a page. The identity of a system page (id, type, name,
// slug) is fixed; for custom pages the slug follows the name.
func (s *SyncService) UpdatePage(ctx context.Context, id string, req dto.PageRequest) (*domain.Page, portssvc.MutationResult, error) {
	s.mu.RLock()
	existing := s.doc.FindPage(id)
	var item domain.Page
	if existing != nil {
		item = *existing
	}
	s.mu.RUnlock()

	if existing == nil {
		return nil, portssvc.MutationResult{}, fmt.Errorf("%w: page %s", apperrors.ErrNotFound, id)
	}

	item.Content = req.Content
	item.Images = req.Images
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.Order = req.Order
	if item.Type == domain.PageTypeCustom {
		item.Name = req.Name
		item.Slug = s.uniqueSlug(utils.Slugify(req.Name), item.ID)
	}

	res, err := s.apply(ctx, domain.Update(domain.CollectionPages, id, item))
	if err != nil {
		return nil, res, err
	}
	return &item, res, nil
}

// DeletePage removes a custom page. Deleting a system page is rejected
// before any state mutation occurs.
func (s *SyncService) DeletePage(ctx context.Context, id string) (portssvc.MutationResult, error) {
	s.mu.RLock()
	existing := s.doc.FindPage(id)
	var pageType domain.PageType
	if existing != nil {
		pageType = existing.Type
	}
	s.mu.RUnlock()

	if existing == nil {
		return portssvc.MutationResult{}, fmt.Errorf("%w: page %s", apperrors.ErrNotFound, id)
	}
	if pageType == domain.PageTypeSystem {
		return portssvc.MutationResult{}, apperrors.ErrSystemPage
	}

	return s.apply(ctx, domain.Delete(domain.CollectionPages, id))
}

// SaveConfig replaces the site-wide settings record. The remote write is a
// scoped field PUT, not a full-document one.
func (s *SyncService) SaveConfig(ctx context.Context, cfg domain.SiteConfig) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.ReplaceField(domain.FieldConfig, cfg))
}

// SavePages replaces the whole pages field (bulk edit / menu reorder). Every
// system page currently in the Document must still be present; dropping one
// would be a deletion through the back door. The identity of a system page
// (id, type, name, slug) is kept from the stored version, so a bulk save can
// reorder or deactivate a system page but never rename or re-slug it. Same
// rule UpdatePage enforces, applied per entry.
func (s *SyncService) SavePages(ctx context.Context, pages []domain.Page) (portssvc.MutationResult, error) {
	s.mu.RLock()
	system := make(map[string]domain.Page)
	for _, p := range s.doc.Pages {
		if p.Type == domain.PageTypeSystem {
			system[p.ID] = p
		}
	}
	s.mu.RUnlock()

	incoming := make(map[string]bool, len(pages))
	for _, p := range pages {
		incoming[p.ID] = true
	}
	for id := range system {
		if !incoming[id] {
			return portssvc.MutationResult{}, fmt.Errorf("%w: page %s", apperrors.ErrSystemPage, id)
		}
	}

	next := make([]domain.Page, len(pages))
	copy(next, pages)
	for i, p := range next {
		stored, ok := system[p.ID]
		if !ok {
			// System pages exist only in the seed; a bulk save cannot mint one.
			next[i].Type = domain.PageTypeCustom
			continue
		}
		p.Type = stored.Type
		p.Name = stored.Name
		p.Slug = stored.Slug
		next[i] = p
	}

	return s.apply(ctx, domain.ReplaceField(domain.FieldPages, next))
}

// SaveHeroImages replaces the ordered hero image references.
func (s *SyncService) SaveHeroImages(ctx context.Context, images []string) (portssvc.MutationResult, error) {
	return s.apply(ctx, domain.ReplaceField(domain.FieldHeroImages, images))
}

// uniqueSlug suffixes slug with a counter while it collides with another
// page's slug. excludeID skips the page being edited itself.
func (s *SyncService) uniqueSlug(slug, excludeID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taken := func(candidate string) bool {
		for _, p := range s.doc.Pages {
			if p.Slug == candidate && p.ID != excludeID {
				return true
			}
		}
		return false
	}

	candidate := slug
	for i := 2; taken(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
	return candidate
}
