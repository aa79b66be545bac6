package localcache_test

import (
	"context"
	"testing"

	"github.com/degroeneboom/school_site_app/internal/adapters/localcache"
	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestBadgerDocumentCache_EmptyCacheReportsNotFound(t *testing.T) {
	cache := localcache.NewBadgerDocumentCache(openTestDB(t))

	_, err := cache.ReadDocument(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBadgerDocumentCache_RoundTrip(t *testing.T) {
	cache := localcache.NewBadgerDocumentCache(openTestDB(t))
	ctx := context.Background()

	doc := domain.SeedDocument()
	doc.News = []domain.NewsItem{{ID: "n1", Title: "Bewaard bericht", Date: "2026-01-01"}}

	require.NoError(t, cache.WriteDocument(ctx, doc))

	got, err := cache.ReadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc.Config, got.Config)
	assert.Len(t, got.News, 1)
	assert.Equal(t, "Bewaard bericht", got.News[0].Title)
	assert.Equal(t, doc.Pages, got.Pages)
}

func TestBadgerDocumentCache_WriteReplacesPrevious(t *testing.T) {
	cache := localcache.NewBadgerDocumentCache(openTestDB(t))
	ctx := context.Background()

	first := domain.SeedDocument()
	first.Config.SchoolName = "Eerste"
	require.NoError(t, cache.WriteDocument(ctx, first))

	second := domain.SeedDocument()
	second.Config.SchoolName = "Tweede"
	require.NoError(t, cache.WriteDocument(ctx, second))

	got, err := cache.ReadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tweede", got.Config.SchoolName)
}

func TestBadgerDocumentCache_CorruptContentsReportsNotFound(t *testing.T) {
	db := openTestDB(t)
	cache := localcache.NewBadgerDocumentCache(db)

	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("site:document"), []byte("{not json"))
	})
	require.NoError(t, err)

	_, err = cache.ReadDocument(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
