package domain_test

import (
	"testing"

	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDocument_InsertUpdateDelete(t *testing.T) {
	doc := domain.SeedDocument()

	err := doc.Insert(domain.CollectionNews, domain.NewsItem{ID: "n1", Title: "Eerste bericht", Date: "2026-01-01"})
	assert.NoError(t, err)
	assert.Len(t, doc.News, 1)

	err = doc.Update(domain.CollectionNews, "n1", domain.NewsItem{Title: "Aangepast", Date: "2026-01-02"})
	assert.NoError(t, err)
	assert.Equal(t, "Aangepast", doc.News[0].Title)

	err = doc.Delete(domain.CollectionNews, "n1")
	assert.NoError(t, err)
	assert.Empty(t, doc.News)
}

func TestDocument_UpdatePreservesStoredID(t *testing.T) {
	doc := domain.Document{News: []domain.NewsItem{{ID: "n1", Title: "Origineel"}}}

	err := doc.Update(domain.CollectionNews, "n1", domain.NewsItem{ID: "hijacked", Title: "Nieuw"})

	assert.NoError(t, err)
	assert.Equal(t, "n1", doc.News[0].ID)
	assert.Equal(t, "Nieuw", doc.News[0].Title)
}

func TestDocument_UpdateMissingEntity(t *testing.T) {
	doc := domain.SeedDocument()
	err := doc.Update(domain.CollectionNews, "missing", domain.NewsItem{Title: "t"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocument_DeleteMissingEntity(t *testing.T) {
	doc := domain.SeedDocument()
	err := doc.Delete(domain.CollectionEvents, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDocument_InsertTypeMismatch(t *testing.T) {
	doc := domain.SeedDocument()
	err := doc.Insert(domain.CollectionNews, domain.Event{ID: "e1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, doc.News)
}

func TestDocument_UnknownCollection(t *testing.T) {
	doc := domain.SeedDocument()
	err := doc.Insert(domain.Collection("unknown"), domain.NewsItem{ID: "n1"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDocument_ReplaceField(t *testing.T) {
	doc := domain.SeedDocument()

	err := doc.ReplaceField(domain.FieldHeroImages, []string{"/uploads/x.jpg"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"/uploads/x.jpg"}, doc.HeroImages)

	err = doc.ReplaceField(domain.FieldHeroImages, 42)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = doc.ReplaceField(domain.Field("unknown"), nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDocument_CloneIsDeep(t *testing.T) {
	doc := domain.SeedDocument()
	doc.News = []domain.NewsItem{{ID: "n1", Title: "Origineel"}}

	clone := doc.Clone()
	clone.News[0].Title = "Aangepast"
	clone.Pages[0].Name = "Aangepast"
	clone.HeroImages[0] = "aangepast"

	assert.Equal(t, "Origineel", doc.News[0].Title)
	assert.Equal(t, "Home", doc.Pages[0].Name)
	assert.NotEqual(t, "aangepast", doc.HeroImages[0])
}

func TestApply_DispatchesByKind(t *testing.T) {
	doc := domain.SeedDocument()

	assert.NoError(t, doc.Apply(domain.Insert(domain.CollectionNews, domain.NewsItem{ID: "n1", Title: "t"})))
	assert.Len(t, doc.News, 1)

	assert.NoError(t, doc.Apply(domain.Update(domain.CollectionNews, "n1", domain.NewsItem{Title: "t2"})))
	assert.Equal(t, "t2", doc.News[0].Title)

	assert.NoError(t, doc.Apply(domain.ReplaceField(domain.FieldHeroImages, []string{"/uploads/h.jpg"})))
	assert.Len(t, doc.HeroImages, 1)

	assert.NoError(t, doc.Apply(domain.Delete(domain.CollectionNews, "n1")))
	assert.Empty(t, doc.News)
}

func TestMergeOverDefaults_NeverRegressesToEmpty(t *testing.T) {
	seed := domain.SeedDocument()
	remote := domain.Document{
		Config:     domain.SiteConfig{Tagline: "Nieuwe slogan"},
		HeroImages: []string{},
		News:       []domain.NewsItem{{ID: "n1", Title: "Remote"}},
	}

	merged := domain.MergeOverDefaults(seed, remote)

	assert.Equal(t, "Nieuwe slogan", merged.Config.Tagline)
	assert.Equal(t, seed.Config.SchoolName, merged.Config.SchoolName)
	assert.Equal(t, seed.Config.ContactEmail, merged.Config.ContactEmail)
	assert.Equal(t, seed.HeroImages, merged.HeroImages)
	assert.Equal(t, seed.Pages, merged.Pages)
	assert.Len(t, merged.News, 1)
}

func TestSeedDocument_SystemPages(t *testing.T) {
	seed := domain.SeedDocument()

	assert.Len(t, seed.Pages, 8)
	for _, p := range seed.Pages {
		assert.Equal(t, domain.PageTypeSystem, p.Type)
		assert.True(t, p.Active)
		assert.NotEmpty(t, p.Slug)
	}
	assert.NotEmpty(t, seed.Config.SchoolName)
	assert.NotEmpty(t, seed.HeroImages)
}
