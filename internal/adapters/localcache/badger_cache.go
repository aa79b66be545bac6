package localcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// documentKey is the single key the serialized Document lives under.
const documentKey = "site:document"

// BadgerDocumentCache is the durable local fallback replica of the Document,
// stored as one JSON value in BadgerDB. It is written after every mutation
// and read on bootstrap when the remote store is unreachable or absent.
type BadgerDocumentCache struct {
	db *badger.DB
}

// NewBadgerDocumentCache creates a cache on an open BadgerDB handle.
func NewBadgerDocumentCache(db *badger.DB) *BadgerDocumentCache {
	return &BadgerDocumentCache{db: db}
}

var _ portsrepo.LocalDocumentCache = (*BadgerDocumentCache)(nil)

// ReadDocument returns the cached Document. An empty cache and a cache whose
// contents no longer decode are both reported as apperrors.ErrNotFound; the
// caller degrades to defaults either way.
func (c *BadgerDocumentCache) ReadDocument(ctx context.Context) (*domain.Document, error) {
	var doc domain.Document

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(documentKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("read cached document: %w", err)
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &doc); err != nil {
				return fmt.Errorf("%w: cached document corrupted: %s", apperrors.ErrNotFound, err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// WriteDocument replaces the cached Document.
func (c *BadgerDocumentCache) WriteDocument(ctx context.Context, doc domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(documentKey), data)
	})
	if err != nil {
		return fmt.Errorf("write cached document: %w", err)
	}
	return nil
}
