package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/volunize-hub/backend/internal/models"
	"github.com/volunize-hub/backend/internal/repositories"
	"github.com/volunize-hub/backend/validators"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) ListSoonest(ctx context.Context, limit int64) ([]models.Post, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListPosts(ctx context.Context, filter repositories.PostFilter, sort repositories.PostSort, page repositories.PostPage) ([]models.Post, error) {
	args := m.Called(ctx, filter, sort, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) CountByTitle(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListByOrganizer(ctx context.Context, email string) ([]models.Post, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) UpdatePost(ctx context.Context, id string, post *models.Post) error {
	args := m.Called(ctx, id, post)
	return args.Error(0)
}

func (m *MockPostRepository) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepository) ReserveSlot(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) ReleaseSlot(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repositories.PostRepository = (*MockPostRepository)(nil)

func setupTestServer(postRepo *MockPostRepository) *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	h := NewPostHandler(postRepo)
	h.RegisterPublicRoutes(e)
	h.RegisterPostRoutes(e.Group(""))
	return e
}

func TestGetSoonestPosts(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	posts := []models.Post{{Title: "Beach cleanup"}, {Title: "Food drive"}}
	mockRepo.On("ListSoonest", mock.Anything, int64(6)).Return(posts, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Post
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Len(t, got, 2)
	mockRepo.AssertExpectations(t)
}

func TestGetAllPosts_ParsesFilterSortAndPage(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	wantPage := repositories.PostPage{Page: 2, Size: 5}
	wantSort := repositories.PostSort{Field: "title", Order: "desc"}
	filterMatch := mock.MatchedBy(func(f repositories.PostFilter) bool {
		return f.Search == "beach" && f.Category == "Cleanup" &&
			f.MinVolunteers != nil && *f.MinVolunteers == 2 &&
			f.MaxVolunteers != nil && *f.MaxVolunteers == 10
	})

	mockRepo.On("ListPosts", mock.Anything, filterMatch, wantSort, wantPage).Return([]models.Post{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/allPosts?search=beach&category=Cleanup&minVolunteers=2&maxVolunteers=10&sortField=title&sortOrder=desc&page=2&size=5", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetAllPosts_InvalidBoundsAreIgnored(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	filterMatch := mock.MatchedBy(func(f repositories.PostFilter) bool {
		return f.MinVolunteers == nil && f.MaxVolunteers == nil
	})
	mockRepo.On("ListPosts", mock.Anything, filterMatch, mock.Anything, mock.Anything).Return([]models.Post{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/allPosts?minVolunteers=abc&maxVolunteers=", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetPostCount(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("CountByTitle", mock.Anything, "beach").Return(int64(7), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post-count?search=beach", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(7), response["count"])
	mockRepo.AssertExpectations(t)
}

func TestGetMyPosts(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("ListByOrganizer", mock.Anything, "org@b.com").Return([]models.Post{{Title: "Tree planting"}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post?email=org@b.com", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("GetPostByID", mock.Anything, "abc123").Return(nil, repositories.ErrPostNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/post/abc123", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
		return p.Title == "Beach cleanup" && p.NumberOfVolunteer == 5 && p.OrganizerEmail == "org@b.com"
	})).Return(nil)

	body := map[string]interface{}{
		"title":             "Beach cleanup",
		"category":          "Environment",
		"location":          "Cox's Bazar",
		"numberOfVolunteer": 5,
		"description":       "Bring gloves",
		"deadline":          time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"organizer_Email":   "org@b.com",
		"organizer_Name":    "Org Name",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post?email=org@b.com", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestCreatePost_InvalidPayload(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	// missing required fields
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/post", bytes.NewBufferString(`{"title":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestUpdatePost_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("UpdatePost", mock.Anything, "abc123", mock.Anything).Return(repositories.ErrPostNotFound)

	body := map[string]interface{}{
		"title":             "Beach cleanup",
		"category":          "Environment",
		"location":          "Cox's Bazar",
		"numberOfVolunteer": 3,
		"description":       "Updated",
		"deadline":          time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"organizer_Email":   "org@b.com",
		"organizer_Name":    "Org Name",
	}
	payload, _ := json.Marshal(body)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/post/abc123", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestDeletePost_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	e := setupTestServer(mockRepo)

	mockRepo.On("DeletePost", mock.Anything, "abc123").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/post/abc123", nil)
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockRepo.AssertExpectations(t)
}
