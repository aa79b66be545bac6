package repositories

import (
	"context"
	"io"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
)

// RemoteDocumentStore is the authoritative document backend, reachable over
// HTTP when configured. All of its methods are allowed to fail; the sync
// engine treats every failure as recoverable.
type RemoteDocumentStore interface {
	// FetchDocument retrieves the full Document.
	FetchDocument(ctx context.Context) (*domain.Document, error)
	// ReplaceDocument persists the full Document, last write wins.
	ReplaceDocument(ctx context.Context, doc domain.Document) error
	// ReplaceField persists one top-level field, leaving the others untouched.
	ReplaceField(ctx context.Context, field domain.Field, value any) error
	// CreateEntity issues a scoped create against one collection endpoint.
	CreateEntity(ctx context.Context, collection domain.Collection, entity domain.Entity) error
	// UpdateEntity issues a scoped update by id.
	UpdateEntity(ctx context.Context, collection domain.Collection, id string, entity domain.Entity) error
	// DeleteEntity issues a scoped delete by id.
	DeleteEntity(ctx context.Context, collection domain.Collection, id string) error
}

// LocalDocumentCache is the durable local fallback replica of the Document.
// It is written after every mutation and read when the remote store is
// unreachable or absent.
type LocalDocumentCache interface {
	// ReadDocument returns the cached Document, or apperrors.ErrNotFound when
	// the cache is empty or its contents cannot be decoded.
	ReadDocument(ctx context.Context) (*domain.Document, error)
	// WriteDocument replaces the cached Document.
	WriteDocument(ctx context.Context, doc domain.Document) error
}

// UploadStore accepts binary payloads and returns opaque string references.
// The core never inspects the bytes, only stores the returned reference in an
// entity's image or file field.
type UploadStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
