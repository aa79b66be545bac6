package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portsrepo "github.com/degroeneboom/school_site_app/internal/core/ports/repositories"
	"github.com/goccy/go-json"
)

// HTTPDocumentStore talks to the remote authoritative document API: a full
// Document endpoint plus scoped per-collection endpoints. Every failure mode
// (network error, non-2xx status, malformed body) is reported as an
// apperrors.ErrRemoteUnavailable-class error; the sync engine treats them all
// as recoverable.
type HTTPDocumentStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPDocumentStore creates a store client for the API rooted at baseURL
// (e.g. "https://kv.example.be/api/v1/admin"). token, when non-empty, is sent
// as a bearer credential. client may be nil; no timeout is imposed beyond the
// transport's defaults.
func NewHTTPDocumentStore(baseURL, token string, client *http.Client) *HTTPDocumentStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPDocumentStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

var _ portsrepo.RemoteDocumentStore = (*HTTPDocumentStore)(nil)

// FetchDocument retrieves the full Document.
func (s *HTTPDocumentStore) FetchDocument(ctx context.Context) (*domain.Document, error) {
	var doc domain.Document
	if err := s.do(ctx, http.MethodGet, "/site", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReplaceDocument persists the full Document, last write wins.
func (s *HTTPDocumentStore) ReplaceDocument(ctx context.Context, doc domain.Document) error {
	return s.do(ctx, http.MethodPut, "/site", doc, nil)
}

// ReplaceField persists one top-level field, leaving the others untouched.
// The remote adapter reconciles this as "replace this field of the Document".
func (s *HTTPDocumentStore) ReplaceField(ctx context.Context, field domain.Field, value any) error {
	return s.do(ctx, http.MethodPut, "/site/"+string(field), value, nil)
}

// CreateEntity issues a scoped create against the collection endpoint.
func (s *HTTPDocumentStore) CreateEntity(ctx context.Context, collection domain.Collection, entity domain.Entity) error {
	return s.do(ctx, http.MethodPost, "/"+string(collection), entity, nil)
}

// UpdateEntity issues a scoped update by id.
func (s *HTTPDocumentStore) UpdateEntity(ctx context.Context, collection domain.Collection, id string, entity domain.Entity) error {
	return s.do(ctx, http.MethodPut, "/"+string(collection)+"/"+id, entity, nil)
}

// DeleteEntity issues a scoped delete by id.
func (s *HTTPDocumentStore) DeleteEntity(ctx context.Context, collection domain.Collection, id string) error {
	return s.do(ctx, http.MethodDelete, "/"+string(collection)+"/"+id, nil, nil)
}

func (s *HTTPDocumentStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body for %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %s", apperrors.ErrRemoteUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned status %d", apperrors.ErrRemoteUnavailable, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s %s returned malformed body: %s", apperrors.ErrRemoteUnavailable, method, path, err)
		}
	}
	return nil
}
