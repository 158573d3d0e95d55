package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiraclone/taskboard-backend/internal/projects/domain"
	"github.com/jiraclone/taskboard-backend/internal/projects/service"
)

type stubStore struct {
	global []domain.Project
	owner  map[string][]domain.Project
}

func (s *stubStore) NewID() string { return "P1" }

func (s *stubStore) PutOwnerProject(_ context.Context, uid string, p domain.Project) error {
	if s.owner == nil {
		s.owner = make(map[string][]domain.Project)
	}
	s.owner[uid] = append(s.owner[uid], p)
	return nil
}

func (s *stubStore) PutGlobalProject(_ context.Context, p domain.Project) error {
	s.global = append(s.global, p)
	return nil
}

func (s *stubStore) ListGlobal(_ context.Context) ([]domain.Project, error) {
	if s.global == nil {
		return []domain.Project{}, nil
	}
	return s.global, nil
}

func (s *stubStore) ListOwned(_ context.Context, uid string) ([]domain.Project, error) {
	return s.owner[uid], nil
}

func (s *stubStore) OwnedProjectIDs(_ context.Context, uid string) (map[string]bool, error) {
	ids := make(map[string]bool)
	for _, p := range s.owner[uid] {
		ids[p.ID] = true
	}
	return ids, nil
}

func setupRouter(store service.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("firebase_uid", "U1")
		c.Set("email", "u1@example.com")
		c.Next()
	})
	New(service.NewProjectService(store)).Register(r.Group("/api/v1"))
	return r
}

func TestListAll_EmptyRegistryReturnsEmptyList(t *testing.T) {
	r := setupRouter(&stubStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK       bool             `json:"ok"`
		Projects []directoryEntry `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Empty(t, resp.Projects)
}

func TestListAll_FlagsOwnership(t *testing.T) {
	store := &stubStore{global: []domain.Project{
		{ID: "P1", Name: "Mine", OwnerID: "U1"},
		{ID: "P2", Name: "Theirs", OwnerID: "U2"},
	}}
	r := setupRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []directoryEntry `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 2)

	byID := map[string]directoryEntry{}
	for _, e := range resp.Projects {
		byID[e.ID] = e
	}
	assert.True(t, byID["P1"].Mine)
	assert.False(t, byID["P2"].Mine)
}

func TestCreate_ReturnsProjectWithOwnerIdentity(t *testing.T) {
	store := &stubStore{}
	r := setupRouter(store)

	payload, _ := json.Marshal(map[string]string{"name": "Alpha", "description": "desc"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OK      bool           `json:"ok"`
		Project domain.Project `json:"project"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "P1", resp.Project.ID)
	assert.Equal(t, "U1", resp.Project.OwnerID)
	assert.Equal(t, "u1@example.com", resp.Project.OwnerEmail)

	require.Len(t, store.global, 1)
	require.Len(t, store.owner["U1"], 1)
	assert.Equal(t, store.global[0], store.owner["U1"][0])
}

func TestListOwned_LegacyRecordCarriesUnknownLabel(t *testing.T) {
	store := &stubStore{owner: map[string][]domain.Project{
		"U1": {
			{ID: "P1", Name: "Dated", OwnerID: "U1", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
			{ID: "P9", Name: "Legacy", OwnerID: "U1"},
		},
	}}
	r := setupRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me/projects", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Projects []ownedEntry `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 2)

	byID := map[string]ownedEntry{}
	for _, e := range resp.Projects {
		byID[e.ID] = e
	}
	assert.Equal(t, domain.UnknownCreatedAt, byID["P9"].CreatedAtLabel)
	assert.Equal(t, "2024-05-01T12:00:00Z", byID["P1"].CreatedAtLabel)
}

func TestCreate_ServiceFailureReturnsGenericError(t *testing.T) {
	store := &stubStore{}
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// No authenticated identity in context, so the service rejects the
	// create before any write.
	New(service.NewProjectService(store)).Register(r.Group("/api/v1"))

	payload, _ := json.Marshal(map[string]string{"name": "Alpha"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to create project")
	assert.NotContains(t, w.Body.String(), "uid")
	assert.Empty(t, store.global)
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	store := &stubStore{}
	r := setupRouter(store)

	payload, _ := json.Marshal(map[string]string{"name": "  "})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.global)
}
