package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/degroeneboom/school_site_app/internal/adapters/uploads"
	"github.com/degroeneboom/school_site_app/internal/apperrors"
	"github.com/degroeneboom/school_site_app/internal/core/domain"
	portssvc "github.com/degroeneboom/school_site_app/internal/core/ports/services"
	"github.com/degroeneboom/school_site_app/internal/core/services"
	"github.com/degroeneboom/school_site_app/internal/dto"
	"github.com/degroeneboom/school_site_app/internal/handlers"
	"github.com/degroeneboom/school_site_app/internal/middleware"
	"github.com/degroeneboom/school_site_app/internal/utils"
	"github.com/degroeneboom/school_site_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// memDocumentCache keeps the persisted Document in memory for router tests.
type memDocumentCache struct {
	mu  sync.Mutex
	doc *domain.Document
}

func (m *memDocumentCache) ReadDocument(ctx context.Context) (*domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return nil, apperrors.ErrNotFound
	}
	d := m.doc.Clone()
	return &d, nil
}

func (m *memDocumentCache) WriteDocument(ctx context.Context, doc domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := doc.Clone()
	m.doc = &d
	return nil
}

// --- Test Suite ---
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	svc    *services.SyncService
	token  string
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := utils.HashPassword("geheim123")
	require.NoError(suite.T(), err)

	cfg := &config.Config{
		Port:              "0",
		IsProduction:      true, // no swagger wiring in tests
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "school-site-app-test",
	}

	suite.svc = services.NewSyncService(nil, &memDocumentCache{}, logger)
	suite.svc.Load(context.Background())

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{Sync: suite.svc}, uploads.NewDiskStore(suite.T().TempDir(), "/uploads"))
	suite.router = r

	suite.token = suite.login("admin", "geheim123")
}

func (suite *RouterTestSuite) login(username, password string) string {
	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return ""
	}
	var resp dto.LoginResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func (suite *RouterTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "OK", w.Body.String())
}

func (suite *RouterTestSuite) TestLogin_WrongPassword() {
	assert.Empty(suite.T(), suite.login("admin", "fout"))
	assert.NotEmpty(suite.T(), suite.token)
}

func (suite *RouterTestSuite) TestAdminRoutesRequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/admin/site", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/admin/site", nil, "not-a-token")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/admin/site", nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestPublicSite_FiltersAdminOnlyData() {
	// Seed content through the service, including entries that must be hidden.
	ctx := context.Background()
	_, _, err := suite.svc.AddNews(ctx, dto.NewsRequest{Title: "Zichtbaar", Content: "c", Date: "2026-01-02"})
	require.NoError(suite.T(), err)
	_, _, err = suite.svc.AddNews(ctx, dto.NewsRequest{Title: "Verlopen", Content: "c", Date: "2026-01-01", ExpiryDate: "2000-01-01"})
	require.NoError(suite.T(), err)
	_, _, err = suite.svc.AddSubmission(ctx, dto.SubmissionRequest{Name: "An", Email: "an@example.be", Message: "m"})
	require.NoError(suite.T(), err)

	w := suite.do(http.MethodGet, "/api/v1/site", nil, "")
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var site map[string]json.RawMessage
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &site))

	var news []domain.NewsItem
	require.NoError(suite.T(), json.Unmarshal(site["news"], &news))
	assert.Len(suite.T(), news, 1)
	assert.Equal(suite.T(), "Zichtbaar", news[0].Title)

	_, hasSubmissions := site["submissions"]
	assert.False(suite.T(), hasSubmissions)
	_, hasEnrollments := site["enrollments"]
	assert.False(suite.T(), hasEnrollments)
}

func (suite *RouterTestSuite) TestNewsLifecycleOverHTTP() {
	created := suite.do(http.MethodPost, "/api/v1/admin/news", dto.NewsRequest{
		Title: "Sportdag", Content: "Breng sportkleren mee", Date: "2026-05-20",
	}, suite.token)
	require.Equal(suite.T(), http.StatusCreated, created.Code)

	var createResp struct {
		Synced bool            `json:"synced"`
		Entity domain.NewsItem `json:"entity"`
	}
	require.NoError(suite.T(), json.Unmarshal(created.Body.Bytes(), &createResp))
	assert.False(suite.T(), createResp.Synced) // no remote configured
	require.NotEmpty(suite.T(), createResp.Entity.ID)

	updated := suite.do(http.MethodPut, "/api/v1/admin/news/"+createResp.Entity.ID, dto.NewsRequest{
		Title: "Sportdag (verplaatst)", Content: "Nieuwe datum", Date: "2026-05-27",
	}, suite.token)
	assert.Equal(suite.T(), http.StatusOK, updated.Code)

	deleted := suite.do(http.MethodDelete, "/api/v1/admin/news/"+createResp.Entity.ID, nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, deleted.Code)

	missing := suite.do(http.MethodDelete, "/api/v1/admin/news/"+createResp.Entity.ID, nil, suite.token)
	assert.Equal(suite.T(), http.StatusNotFound, missing.Code)
}

func (suite *RouterTestSuite) TestCreateNews_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/v1/admin/news", map[string]string{"title": "zonder datum"}, suite.token)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestDeleteSystemPage_Unprocessable() {
	w := suite.do(http.MethodDelete, "/api/v1/admin/pages/page-home", nil, suite.token)
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *RouterTestSuite) TestSubmissionFlow() {
	created := suite.do(http.MethodPost, "/api/v1/submissions", dto.SubmissionRequest{
		Name: "Jef", Email: "jef@example.be", Message: "Wanneer is de opendeurdag?",
	}, "")
	require.Equal(suite.T(), http.StatusCreated, created.Code)

	var createResp struct {
		Entity domain.Submission `json:"entity"`
	}
	require.NoError(suite.T(), json.Unmarshal(created.Body.Bytes(), &createResp))
	assert.Equal(suite.T(), domain.SubmissionStatusNew, createResp.Entity.Status)

	read := suite.do(http.MethodPut, "/api/v1/admin/submissions/"+createResp.Entity.ID+"/read", nil, suite.token)
	assert.Equal(suite.T(), http.StatusOK, read.Code)

	list := suite.do(http.MethodGet, "/api/v1/admin/submissions", nil, suite.token)
	require.Equal(suite.T(), http.StatusOK, list.Code)
	var items []domain.Submission
	require.NoError(suite.T(), json.Unmarshal(list.Body.Bytes(), &items))
	require.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), domain.SubmissionStatusRead, items[0].Status)
}

func (suite *RouterTestSuite) TestEnrollmentStatusFlow() {
	created := suite.do(http.MethodPost, "/api/v1/enrollments", dto.EnrollmentRequest{
		ChildName: "Lou", BirthDate: "2021-09-15", ParentName: "Sam", Email: "sam@example.be",
	}, "")
	require.Equal(suite.T(), http.StatusCreated, created.Code)

	var createResp struct {
		Entity domain.Enrollment `json:"entity"`
	}
	require.NoError(suite.T(), json.Unmarshal(created.Body.Bytes(), &createResp))

	bad := suite.do(http.MethodPut, "/api/v1/admin/enrollments/"+createResp.Entity.ID+"/status",
		map[string]string{"status": "archived"}, suite.token)
	assert.Equal(suite.T(), http.StatusBadRequest, bad.Code)

	ok := suite.do(http.MethodPut, "/api/v1/admin/enrollments/"+createResp.Entity.ID+"/status",
		dto.UpdateEnrollmentStatusRequest{Status: domain.EnrollmentStatusFulfilled}, suite.token)
	assert.Equal(suite.T(), http.StatusOK, ok.Code)
	assert.Equal(suite.T(), domain.EnrollmentStatusFulfilled, suite.svc.Snapshot().Enrollments[0].Status)
}

func (suite *RouterTestSuite) TestSaveHeroImages() {
	w := suite.do(http.MethodPut, "/api/v1/admin/site/hero-images",
		dto.SaveHeroImagesRequest{Images: []string{"/uploads/nieuw.jpg"}}, suite.token)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), []string{"/uploads/nieuw.jpg"}, suite.svc.Snapshot().HeroImages)
}

// --- Run Suite ---
func TestRouter(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
