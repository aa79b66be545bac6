package services

import (
	"context"
	"time"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	"github.com/degroeneboom/school_site_app/internal/dto"
)

// LoadSource identifies which tier the Document was adopted from on load.
type LoadSource string

const (
	LoadSourceRemote   LoadSource = "remote"
	LoadSourceCache    LoadSource = "cache"
	LoadSourceDefaults LoadSource = "defaults"
)

// LoadResult reports how bootstrap resolved. Load never fails; a degraded
// source is signalled here instead of through an error.
type LoadResult struct {
	Source  LoadSource
	Warning string // non-fatal degradation notice, empty on a clean load
}

// MutationResult reports the outcome of one mutation. Synced is false when
// the remote write failed or no remote is configured; the mutation still
// succeeded ("saved locally").
type MutationResult struct {
	Synced bool
	Entity domain.Entity // the entity as stored, nil for deletes and bulk replaces
}

// ChangeEvent is broadcast after every successful mutation so other open
// views of the Document can re-read and refresh.
type ChangeEvent struct {
	Kind       domain.OpKind     `json:"kind"`
	Collection domain.Collection `json:"collection,omitempty"`
	Field      domain.Field      `json:"field,omitempty"`
	ID         string            `json:"id,omitempty"`
}

// SyncReaderSvc defines read operations over the engine-owned Document.
type SyncReaderSvc interface {
	// Snapshot returns a deep copy of the current Document.
	Snapshot() domain.Document
	// ActiveNews returns unexpired news sorted by date descending.
	ActiveNews(now time.Time) []domain.NewsItem
	// ActiveAlbums returns unexpired albums.
	ActiveAlbums(now time.Time) []domain.Album
}

// SyncWriterSvc defines the entity-scoped mutation operations. Every method
// runs the shared four-step protocol: optimistic in-memory apply, best-effort
// remote write, unconditional local persist, change notification.
type SyncWriterSvc interface {
	AddNews(ctx context.Context, req dto.NewsRequest) (*domain.NewsItem, MutationResult, error)
	UpdateNews(ctx context.Context, id string, req dto.NewsRequest) (*domain.NewsItem, MutationResult, error)
	DeleteNews(ctx context.Context, id string) (MutationResult, error)

	AddEvent(ctx context.Context, req dto.EventRequest) (*domain.Event, MutationResult, error)
	UpdateEvent(ctx context.Context, id string, req dto.EventRequest) (*domain.Event, MutationResult, error)
	DeleteEvent(ctx context.Context, id string) (MutationResult, error)

	AddAlbum(ctx context.Context, req dto.AlbumRequest) (*domain.Album, MutationResult, error)
	UpdateAlbum(ctx context.Context, id string, req dto.AlbumRequest) (*domain.Album, MutationResult, error)
	DeleteAlbum(ctx context.Context, id string) (MutationResult, error)

	AddTeamMember(ctx context.Context, req dto.TeamMemberRequest) (*domain.TeamMember, MutationResult, error)
	UpdateTeamMember(ctx context.Context, id string, req dto.TeamMemberRequest) (*domain.TeamMember, MutationResult, error)
	DeleteTeamMember(ctx context.Context, id string) (MutationResult, error)

	AddActivity(ctx context.Context, req dto.ActivityRequest) (*domain.Activity, MutationResult, error)
	UpdateActivity(ctx context.Context, id string, req dto.ActivityRequest) (*domain.Activity, MutationResult, error)
	DeleteActivity(ctx context.Context, id string) (MutationResult, error)

	AddDownload(ctx context.Context, req dto.DownloadRequest) (*domain.Download, MutationResult, error)
	UpdateDownload(ctx context.Context, id string, req dto.DownloadRequest) (*domain.Download, MutationResult, error)
	DeleteDownload(ctx context.Context, id string) (MutationResult, error)

	AddSubmission(ctx context.Context, req dto.SubmissionRequest) (*domain.Submission, MutationResult, error)
	MarkSubmissionRead(ctx context.Context, id string) (MutationResult, error)

	AddEnrollment(ctx context.Context, req dto.EnrollmentRequest) (*domain.Enrollment, MutationResult, error)
	UpdateEnrollmentStatus(ctx context.Context, id string, status domain.EnrollmentStatus) (MutationResult, error)

	AddPage(ctx context.Context, req dto.PageRequest) (*domain.Page, MutationResult, error)
	UpdatePage(ctx context.Context, id string, req dto.PageRequest) (*domain.Page, MutationResult, error)
	DeletePage(ctx context.Context, id string) (MutationResult, error)

	SaveConfig(ctx context.Context, cfg domain.SiteConfig) (MutationResult, error)
	SavePages(ctx context.Context, pages []domain.Page) (MutationResult, error)
	SaveHeroImages(ctx context.Context, images []string) (MutationResult, error)

	ReplaceDocument(ctx context.Context, doc domain.Document) (MutationResult, error)
}

// SyncNotifierSvc is the explicit observer interface for change
// notifications. Delivery is best-effort; a slow subscriber drops events
// rather than blocking a mutation.
type SyncNotifierSvc interface {
	Subscribe() (id string, ch <-chan ChangeEvent)
	Unsubscribe(id string)
}

// SyncSvcFacade combines bootstrap, reads, mutations and notifications.
type SyncSvcFacade interface {
	// Load bootstraps the Document: remote when configured, local cache as
	// fallback, built-in defaults as last resort. It always terminates with a
	// fully-populated Document and never returns an error.
	Load(ctx context.Context) LoadResult

	SyncReaderSvc
	SyncWriterSvc
	SyncNotifierSvc
}

// ServiceContainer holds instances of all the application services. It is the
// entry point for handlers.
type ServiceContainer struct {
	Sync SyncSvcFacade
}
