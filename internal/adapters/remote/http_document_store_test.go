package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/degroeneboom/school_site_app/internal/adapters/remote"
	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPDocumentStore_FetchDocument(t *testing.T) {
	doc := domain.SeedDocument()
	doc.Config.SchoolName = "Remote School"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/site", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(doc)
	}))
	defer srv.Close()

	store := remote.NewHTTPDocumentStore(srv.URL, "secret", nil)
	got, err := store.FetchDocument(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Remote School", got.Config.SchoolName)
	assert.Len(t, got.Pages, len(doc.Pages))
}

func TestHTTPDocumentStore_ScopedEntityCalls(t *testing.T) {
	type call struct {
		method, path string
	}
	var calls []call

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		if r.Body != nil {
			var payload map[string]any
			_ = json.NewDecoder(r.Body).Decode(&payload)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := remote.NewHTTPDocumentStore(srv.URL+"/", "", nil)
	ctx := context.Background()

	require.NoError(t, store.CreateEntity(ctx, domain.CollectionNews, domain.NewsItem{ID: "n1"}))
	require.NoError(t, store.UpdateEntity(ctx, domain.CollectionNews, "n1", domain.NewsItem{ID: "n1"}))
	require.NoError(t, store.DeleteEntity(ctx, domain.CollectionNews, "n1"))
	require.NoError(t, store.ReplaceField(ctx, domain.FieldHeroImages, []string{"/uploads/a.jpg"}))
	require.NoError(t, store.ReplaceDocument(ctx, domain.SeedDocument()))

	assert.Equal(t, []call{
		{http.MethodPost, "/news"},
		{http.MethodPut, "/news/n1"},
		{http.MethodDelete, "/news/n1"},
		{http.MethodPut, "/site/heroImages"},
		{http.MethodPut, "/site"},
	}, calls)
}

func TestHTTPDocumentStore_NonSuccessStatusIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	store := remote.NewHTTPDocumentStore(srv.URL, "", nil)
	_, err := store.FetchDocument(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestHTTPDocumentStore_NetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the port refuses connections

	store := remote.NewHTTPDocumentStore(srv.URL, "", nil)
	err := store.ReplaceDocument(context.Background(), domain.SeedDocument())

	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}

func TestHTTPDocumentStore_MalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{truncated"))
	}))
	defer srv.Close()

	store := remote.NewHTTPDocumentStore(srv.URL, "", nil)
	_, err := store.FetchDocument(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)
}
