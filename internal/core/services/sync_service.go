package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
)

// SyncService owns the canonical in-memory Document and orchestrates
// load-on-start, optimistic entity-scoped mutations and three-tier fallback:
// remote document store when configured, durable local cache always,
// in-memory only as the floor. No other component mutates the Document;
// everything goes through the four-step protocol in apply.
type SyncService struct {
	mu  sync.RWMutex
	doc domain.Document

	// remote is nil for a disconnected deployment. That is the steady
	// operating mode, not an error state; the check happens once, here,
	// instead of in every mutation.
	remote   portsrepo.RemoteDocumentStore
	cache    portsrepo.LocalDocumentCache
	notifier *changeNotifier
	logger   *slog.Logger
	now      func() time.Time
}

var _ portssvc.SyncSvcFacade = (*SyncService)(nil)

// NewSyncService creates the sync engine. Pass a nil remote for a
// disconnected deployment; cache is required.
func NewSyncService(remote portsrepo.RemoteDocumentStore, cache portsrepo.LocalDocumentCache, logger *slog.Logger) *SyncService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncService{
		doc:      domain.SeedDocument(),
		remote:   remote,
		cache:    cache,
		notifier: newChangeNotifier(),
		logger:   logger,
		now:      time.Now,
	}
}

// Load bootstraps the Document. Order of truth: remote store (merged
// non-empty over the seed, so a blank remote field never erases a populated
// default), then the durable local cache, then the built-in seed. The cached
// Document is adopted verbatim: it was written by this engine after a
// mutation, so an empty field in it is a deliberate admin edit, not data
// loss, and must survive a restart. Load always terminates with a
// fully-populated Document and never fails; every degraded path is reported
// as a warning in the result. Load writes nothing back to any store.
func (s *SyncService) Load(ctx context.Context) portssvc.LoadResult {
	seed := domain.SeedDocument()
	warning := ""

	if s.remote != nil {
		remoteDoc, err := s.remote.FetchDocument(ctx)
		if err == nil && remoteDoc != nil {
			s.adopt(domain.MergeOverDefaults(seed, *remoteDoc))
			s.logger.Info("document loaded from remote store")
			return portssvc.LoadResult{Source: portssvc.LoadSourceRemote}
		}
		warning = fmt.Sprintf("remote document store unavailable, falling back to local data: %v", err)
		s.logger.Warn("remote load failed", slog.String("error", fmt.Sprint(err)))
	}

	cached, err := s.cache.ReadDocument(ctx)
	if err == nil && cached != nil {
		s.adopt(*cached)
		s.logger.Info("document loaded from local cache")
		return portssvc.LoadResult{Source: portssvc.LoadSourceCache, Warning: warning}
	}

	s.adopt(seed)
	s.logger.Info("document loaded from built-in defaults")
	return portssvc.LoadResult{Source: portssvc.LoadSourceDefaults, Warning: warning}
}

func (s *SyncService) adopt(doc domain.Document) {
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the current Document.
func (s *SyncService) Snapshot() domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// ActiveNews returns unexpired news sorted by date descending.
func (s *SyncService) ActiveNews(now time.Time) []domain.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ActiveNews(s.doc, now)
}

// ActiveAlbums returns unexpired albums.
func (s *SyncService) ActiveAlbums(now time.Time) []domain.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.ActiveAlbums(s.doc, now)
}

// apply runs the shared four-step mutation protocol:
//
//  1. optimistic local apply: the operation mutates a working copy under the
//     lock; a validation failure leaves the Document untouched.
//  2. best-effort remote write: a scoped call matching the operation, with a
//     full-document replace as fallback. Failure never rolls back step 1.
//  3. unconditional local persist: the durability backstop. Its failure is
//     the one fatal outcome (ErrLocalPersist) because at that point the
//     change exists only in memory.
//  4. best-effort change notification.
func (s *SyncService) apply(ctx context.Context, op domain.Operation) (portssvc.MutationResult, error) {
	s.mu.Lock()
	working := s.doc.Clone()
	if err := working.Apply(op); err != nil {
		s.mu.Unlock()
		return portssvc.MutationResult{}, err
	}
	s.doc = working
	s.mu.Unlock()

	res := portssvc.MutationResult{Entity: op.Entity}
	res.Synced = s.pushRemote(ctx, op, working)

	if err := s.cache.WriteDocument(ctx, working); err != nil {
		s.logger.Error("local persist failed, mutation has no durability",
			slog.String("op", op.String()), slog.String("error", err.Error()))
		return res, fmt.Errorf("%w: %s", apperrors.ErrLocalPersist, err)
	}

	s.notifier.publish(portssvc.ChangeEvent{
		Kind:       op.Kind,
		Collection: op.Collection,
		Field:      op.Field,
		ID:         op.ID,
	})
	return res, nil
}

// pushRemote attempts the remote write for op and reports whether the remote
// store confirmed it. A scoped entity call is tried first; if the upstream
// does not support it, the engine falls back to a full-document replace,
// which is always legal because every mutation serializes the entire current
// Document (last write wins at the document level).
func (s *SyncService) pushRemote(ctx context.Context, op domain.Operation, doc domain.Document) bool {
	if s.remote == nil {
		return false
	}

	var err error
	switch op.Kind {
	case domain.OpInsert:
		err = s.remote.CreateEntity(ctx, op.Collection, op.Entity)
	case domain.OpUpdate:
		err = s.remote.UpdateEntity(ctx, op.Collection, op.ID, op.Entity)
	case domain.OpDelete:
		err = s.remote.DeleteEntity(ctx, op.Collection, op.ID)
	case domain.OpReplaceField:
		err = s.remote.ReplaceField(ctx, op.Field, op.Value)
	default:
		err = s.remote.ReplaceDocument(ctx, doc)
	}
	if err == nil {
		return true
	}

	ferr := s.remote.ReplaceDocument(ctx, doc)
	if ferr == nil {
		return true
	}

	s.logger.Warn("remote write failed, change saved locally only",
		slog.String("op", op.String()),
		slog.String("error", err.Error()),
		slog.String("fallback_error", ferr.Error()))
	return false
}

// ReplaceDocument replaces the whole in-memory Document, then runs the
// remote/persist/notify tail of the protocol. Used by the admin
// full-document save.
func (s *SyncService) ReplaceDocument(ctx context.Context, doc domain.Document) (portssvc.MutationResult, error) {
	working := doc.Clone()
	s.adopt(working)

	res := portssvc.MutationResult{}
	if s.remote != nil {
		if err := s.remote.ReplaceDocument(ctx, working); err != nil {
			s.logger.Warn("remote document replace failed, saved locally only", slog.String("error", err.Error()))
		} else {
			res.Synced = true
		}
	}

	if err := s.cache.WriteDocument(ctx, working); err != nil {
		s.logger.Error("local persist failed after document replace", slog.String("error", err.Error()))
		return res, fmt.Errorf("%w: %s", apperrors.ErrLocalPersist, err)
	}

	s.notifier.publish(portssvc.ChangeEvent{Kind: domain.OpReplaceField})
	return res, nil
}

// Subscribe registers a change listener. Delivery is best-effort: a
// subscriber that stops draining its channel loses events, never blocks a
// mutation.
func (s *SyncService) Subscribe() (string, <-chan portssvc.ChangeEvent) {
	return s.notifier.subscribe()
}

// Unsubscribe removes a change listener and closes its channel.
func (s *SyncService) Unsubscribe(id string) {
	s.notifier.unsubscribe(id)
}
