package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"petcare-api/models"
	"petcare-api/scoring"
	"petcare-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubModerationService struct {
	analyzeResult *services.AnalyzeResult
	processResult *services.AutoProcessResult
	processErr    error
	reviewErr     error
}

func (s *stubModerationService) Analyze(req models.AnalyzeRequest) *services.AnalyzeResult {
	return s.analyzeResult
}

func (s *stubModerationService) AutoProcess(req models.AutoProcessRequest, moderatorID uint) (*services.AutoProcessResult, error) {
	return s.processResult, s.processErr
}

func (s *stubModerationService) GetQueue(page, limit int) ([]models.ModerationQueueEntry, int64, error) {
	return []models.ModerationQueueEntry{}, 0, nil
}

func (s *stubModerationService) MarkReviewed(id uint, moderatorID uint) error {
	return s.reviewErr
}

func setupModerationRouter(svc services.ModerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uint(7))
		c.Set("role", models.RoleModerator)
	})
	handler := NewModerationHandler(svc)
	router.POST("/moderation/analyze", handler.Analyze)
	router.POST("/moderation/auto-process", handler.AutoProcess)
	router.GET("/moderation/queue", handler.GetQueue)
	router.PUT("/moderation/queue/:id/review", handler.ReviewQueueEntry)
	return router
}

func performJSON(router *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	svc := &stubModerationService{
		analyzeResult: &services.AnalyzeResult{
			Recommendation: scoring.RecommendApprove,
			OverallScore:   85,
			ProcessingTime: "412µs",
		},
	}
	router := setupModerationRouter(svc)

	w := performJSON(router, http.MethodPost, "/moderation/analyze", models.AnalyzeRequest{
		Content:     "My cat sneezes a lot, is that normal?",
		ContentType: "question",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var result services.AnalyzeResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, scoring.RecommendApprove, result.Recommendation)
}

func TestAnalyzeEndpointRejectsMissingContent(t *testing.T) {
	router := setupModerationRouter(&stubModerationService{})

	w := performJSON(router, http.MethodPost, "/moderation/analyze", gin.H{"contentType": "question"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAutoProcessEndpointBlocked(t *testing.T) {
	svc := &stubModerationService{
		processResult: &services.AutoProcessResult{
			Recommendation: scoring.RecommendBlock,
			Blocked:        true,
		},
	}
	router := setupModerationRouter(svc)

	w := performJSON(router, http.MethodPost, "/moderation/auto-process", models.AutoProcessRequest{
		ContentID:   3,
		ContentType: "question",
		Action:      models.ActionProcess,
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "blocked")
}

func TestAutoProcessEndpointNotFound(t *testing.T) {
	svc := &stubModerationService{processErr: services.ErrNotFound}
	router := setupModerationRouter(svc)

	w := performJSON(router, http.MethodPost, "/moderation/auto-process", models.AutoProcessRequest{
		ContentID:   999,
		ContentType: "question",
		Action:      models.ActionProcess,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewQueueEntryEndpoint(t *testing.T) {
	router := setupModerationRouter(&stubModerationService{})

	req := httptest.NewRequest(http.MethodPut, "/moderation/queue/4/review", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reviewed")
}

func TestReviewQueueEntryEndpointUnknownEntry(t *testing.T) {
	router := setupModerationRouter(&stubModerationService{reviewErr: services.ErrNotFound})

	req := httptest.NewRequest(http.MethodPut, "/moderation/queue/99/review", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAutoProcessEndpointRejectsUnknownAction(t *testing.T) {
	router := setupModerationRouter(&stubModerationService{})

	w := performJSON(router, http.MethodPost, "/moderation/auto-process", gin.H{
		"contentId":   3,
		"contentType": "question",
		"action":      "escalate",
	})

	// Rejected by request binding before the service is reached.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
