package domain_test

import (
	"testing"
	"time"

	"github.com/degroeneboom/school_site_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestActiveNews_ExpiryFiltering(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	doc := domain.Document{News: []domain.NewsItem{
		{ID: "1", Title: "Geen vervaldatum", Date: "2026-01-01"},
		{ID: "2", Title: "Toekomst", Date: "2026-02-01", ExpiryDate: "2099-01-01"},
		{ID: "3", Title: "Verlopen", Date: "2026-03-01", ExpiryDate: "2000-01-01"},
		{ID: "4", Title: "Vandaag verlopen", Date: "2026-03-02", ExpiryDate: "2026-04-15"},
		{ID: "5", Title: "Onleesbare datum", Date: "2026-03-03", ExpiryDate: "binnenkort"},
	}}

	active := domain.ActiveNews(doc, now)

	ids := make([]string, 0, len(active))
	for _, n := range active {
		ids = append(ids, n.ID)
	}
	// An expiry on today's date is no longer strictly in the future.
	assert.NotContains(t, ids, "3")
	assert.NotContains(t, ids, "4")
	assert.Contains(t, ids, "1")
	assert.Contains(t, ids, "2")
	assert.Contains(t, ids, "5")
}

func TestActiveNews_SortedByDateDescending(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	doc := domain.Document{News: []domain.NewsItem{
		{ID: "old", Date: "2026-01-01"},
		{ID: "newest", Date: "2026-04-01"},
		{ID: "middle", Date: "2026-02-15"},
	}}

	active := domain.ActiveNews(doc, now)

	assert.Equal(t, "newest", active[0].ID)
	assert.Equal(t, "middle", active[1].ID)
	assert.Equal(t, "old", active[2].ID)
}

func TestActiveNews_FilteringDoesNotMutateDocument(t *testing.T) {
	now := time.Now()
	doc := domain.Document{News: []domain.NewsItem{
		{ID: "1", Date: "2026-01-01", ExpiryDate: "2000-01-01"},
		{ID: "2", Date: "2026-02-01"},
	}}

	domain.ActiveNews(doc, now)

	assert.Len(t, doc.News, 2)
}

func TestActiveAlbums_KeepsStoredOrder(t *testing.T) {
	now := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)
	doc := domain.Document{Albums: []domain.Album{
		{ID: "a", Title: "Sportdag"},
		{ID: "b", Title: "Verlopen", ExpiryDate: "2020-01-01"},
		{ID: "c", Title: "Schoolfeest", ExpiryDate: "2099-01-01"},
	}}

	active := domain.ActiveAlbums(doc, now)

	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
}

func TestSortedSubmissions_NewestFirst(t *testing.T) {
	doc := domain.Document{Submissions: []domain.Submission{
		{ID: "1", SubmittedAt: "2026-01-01T10:00:00Z"},
		{ID: "2", SubmittedAt: "2026-03-01T10:00:00Z"},
		{ID: "3", SubmittedAt: "2026-02-01T10:00:00Z"},
	}}

	sorted := domain.SortedSubmissions(doc)

	assert.Equal(t, "2", sorted[0].ID)
	assert.Equal(t, "3", sorted[1].ID)
	assert.Equal(t, "1", sorted[2].ID)
	// Storage order stays insertion order.
	assert.Equal(t, "1", doc.Submissions[0].ID)
}

func TestSortedEnrollments_NewestFirst(t *testing.T) {
	doc := domain.Document{Enrollments: []domain.Enrollment{
		{ID: "1", SubmittedAt: "2026-01-01T10:00:00Z"},
		{ID: "2", SubmittedAt: "2026-06-01T10:00:00Z"},
	}}

	sorted := domain.SortedEnrollments(doc)
	assert.Equal(t, "2", sorted[0].ID)
}

func TestActivePages_FiltersInactiveAndSortsByOrder(t *testing.T) {
	doc := domain.Document{Pages: []domain.Page{
		{ID: "b", Active: true, Order: 2},
		{ID: "hidden", Active: false, Order: 0},
		{ID: "a", Active: true, Order: 1},
	}}

	active := domain.ActivePages(doc)

	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)
}
