package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Anandhu362/Url-shorten-website/internal/domain"
	"github.com/Anandhu362/Url-shorten-website/tests/mocks"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestShortenURL_Success(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "https://a.com"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	created := &domain.ShortLink{
		ID:          1,
		OriginalURL: "https://a.com",
		ShortID:     "abc1234",
		ShortURL:    "http://localhost:8080/abc1234",
		Clicks:      0,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mockService.On("ShortenURL", mock.Anything, mock.MatchedBy(func(req *domain.ShortenRequest) bool {
		return req.OriginalURL == "https://a.com" && req.CustomAlias == ""
	})).Return(created, true, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "abc1234", resp["shortId"])
	assert.Equal(t, "https://a.com", resp["originalUrl"])
	assert.Equal(t, "http://localhost:8080/abc1234", resp["shortUrl"])
	assert.Equal(t, float64(0), resp["clicks"])

	mockService.AssertExpectations(t)
}

func TestShortenURL_ExistingURL_Returns200WithMessage(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "https://a.com"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	existing := &domain.ShortLink{
		ID:          1,
		OriginalURL: "https://a.com",
		ShortID:     "abc1234",
		ShortURL:    "http://localhost:8080/abc1234",
		Clicks:      12,
	}

	mockService.On("ShortenURL", mock.Anything, mock.Anything).
		Return(existing, false, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "abc1234", resp["shortId"])
	assert.Contains(t, resp["message"], "already been shortened")

	mockService.AssertExpectations(t)
}

func TestShortenURL_MissingURL(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"customAlias": "mylink"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ShortenURL")
}

func TestShortenURL_InvalidURLFormat(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "not-a-valid-url"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ShortenURL")
}

func TestShortenURL_AliasTaken(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "https://a.com", "customAlias": "taken1"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("ShortenURL", mock.Anything, mock.Anything).
		Return(nil, false, domain.ErrAliasTaken).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "alias")

	mockService.AssertExpectations(t)
}

func TestShortenURL_ReservedAlias(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "https://a.com", "customAlias": "healthz"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ShortenURL")
}

func TestShortenURL_ServiceError(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/shorten", h.ShortenURL)

	reqBody := `{"originalUrl": "https://a.com"}`
	req := httptest.NewRequest("POST", "/api/urls/shorten", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("ShortenURL", mock.Anything, mock.Anything).
		Return(nil, false, errors.New("database error")).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockService.AssertExpectations(t)
}

func TestRedirect_Success(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.GET("/:shortId", h.Redirect)

	req := httptest.NewRequest("GET", "/abc1234", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0")
	w := httptest.NewRecorder()

	link := &domain.ShortLink{
		ShortID:     "abc1234",
		OriginalURL: "https://example.com/page",
	}

	mockService.On("ResolveAndRecord", mock.Anything, "abc1234", mock.Anything, mock.Anything).
		Return(link, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://example.com/page", w.Header().Get("Location"))

	mockService.AssertExpectations(t)
}

func TestRedirect_NotFound(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.GET("/:shortId", h.Redirect)

	req := httptest.NewRequest("GET", "/notfound", nil)
	w := httptest.NewRecorder()

	mockService.On("ResolveAndRecord", mock.Anything, "notfound", mock.Anything, mock.Anything).
		Return(nil, domain.ErrNotFound).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Contains(t, resp["error"], "URL not found")

	mockService.AssertExpectations(t)
}

func TestRedirect_RecordingFailure_NoRedirect(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.GET("/:shortId", h.Redirect)

	req := httptest.NewRequest("GET", "/abc1234", nil)
	w := httptest.NewRecorder()

	mockService.On("ResolveAndRecord", mock.Anything, "abc1234", mock.Anything, mock.Anything).
		Return(nil, errors.New("failed to record click: connection refused")).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Location"))

	mockService.AssertExpectations(t)
}

func TestCheckURL_Exists(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/check", h.CheckURL)

	reqBody := `{"originalUrl": "https://a.com"}`
	req := httptest.NewRequest("POST", "/api/urls/check", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	link := &domain.ShortLink{ShortID: "abc1234", OriginalURL: "https://a.com"}
	mockService.On("CheckOriginalURL", mock.Anything, "https://a.com").
		Return(link, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["exists"])
	assert.NotNil(t, resp["url"])

	mockService.AssertExpectations(t)
}

func TestCheckURL_NotExists(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/check", h.CheckURL)

	reqBody := `{"originalUrl": "https://never-seen.com"}`
	req := httptest.NewRequest("POST", "/api/urls/check", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	mockService.On("CheckOriginalURL", mock.Anything, "https://never-seen.com").
		Return(nil, domain.ErrNotFound).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, false, resp["exists"])
	_, hasURL := resp["url"]
	assert.False(t, hasURL)

	mockService.AssertExpectations(t)
}

func TestCheckURL_MissingBody(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.POST("/api/urls/check", h.CheckURL)

	req := httptest.NewRequest("POST", "/api/urls/check", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CheckOriginalURL")
}

func TestCheckShortID_Exists(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.GET("/api/urls/check-short/:shortId", h.CheckShortID)

	req := httptest.NewRequest("GET", "/api/urls/check-short/abc1234", nil)
	w := httptest.NewRecorder()

	link := &domain.ShortLink{ShortID: "abc1234", OriginalURL: "https://a.com"}
	mockService.On("CheckShortID", mock.Anything, "abc1234").
		Return(link, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, true, resp["exists"])

	mockService.AssertExpectations(t)
}

func TestListURLs(t *testing.T) {
	mockService := new(mocks.MockShortenerService)
	h := NewShortenerHandler(mockService)
	router := setupTestRouter()
	router.GET("/api/urls", h.ListURLs)

	req := httptest.NewRequest("GET", "/api/urls", nil)
	w := httptest.NewRecorder()

	mockService.On("ListURLs", mock.Anything).Return([]domain.ShortLink{
		{ShortID: "newer12"},
		{ShortID: "older12"},
	}, nil).Once()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "newer12", resp[0]["shortId"])

	mockService.AssertExpectations(t)
}
