package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studypulse/backend/internal/dto"
	"github.com/studypulse/backend/internal/service"
)

type stubReconcileService struct {
	gotStudentID uint
	gotRequest   dto.SubmitProgressRequest
	result       *dto.ReconcileResultDTO
	err          error
}

func (s *stubReconcileService) Reconcile(studentID uint, req dto.SubmitProgressRequest) (*dto.ReconcileResultDTO, error) {
	s.gotStudentID = studentID
	s.gotRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubQueryService struct {
	summary  *dto.ProgressSummaryDTO
	calendar *dto.MonthlyProgressDTO
	err      error
}

func (s *stubQueryService) GetSummary(uint) (*dto.ProgressSummaryDTO, error) {
	return s.summary, s.err
}

func (s *stubQueryService) GetSolved(uint) ([]dto.SolvedRecordDTO, error) {
	return nil, s.err
}

func (s *stubQueryService) GetAttempted(uint) ([]dto.AttemptedRecordDTO, error) {
	return nil, s.err
}

func (s *stubQueryService) GetCalendar(uint, string) (*dto.MonthlyProgressDTO, error) {
	return s.calendar, s.err
}

func newRouter(reconcileSvc service.ReconcileService, querySvc service.ProgressQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewProgressController(reconcileSvc, querySvc)
	progress := router.Group("/api/v1/progress", StudentAuth())
	progress.POST("/submissions", ctrl.SubmitProgress)
	progress.GET("/summary", ctrl.GetSummary)
	progress.GET("/calendar", ctrl.GetCalendar)
	return router
}

func doRequest(router *gin.Engine, method, path, studentHeader string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if studentHeader != "" {
		req.Header.Set("X-Student-ID", studentHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitProgress_NoIdentity(t *testing.T) {
	router := newRouter(&stubReconcileService{}, &stubQueryService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/progress/submissions", "", []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitProgress_MalformedIdentity(t *testing.T) {
	router := newRouter(&stubReconcileService{}, &stubQueryService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/progress/submissions", "not-a-number", []byte(`{}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitProgress_BadBody(t *testing.T) {
	router := newRouter(&stubReconcileService{}, &stubQueryService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/progress/submissions", "7", []byte(`{"correct_question_ids": "nope"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitProgress_Success(t *testing.T) {
	svc := &stubReconcileService{
		result: &dto.ReconcileResultDTO{Success: true, NewlySolved: 2, PointsAwarded: 4, Month: "March 2025"},
	}
	router := newRouter(svc, &stubQueryService{})

	body := []byte(`{"correct_question_ids": [1, 2], "attempted_question_ids": [3]}`)
	rec := doRequest(router, http.MethodPost, "/api/v1/progress/submissions", "7", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, uint(7), svc.gotStudentID)
	assert.Equal(t, []uint{1, 2}, svc.gotRequest.CorrectQuestionIDs)
	assert.Equal(t, []uint{3}, svc.gotRequest.AttemptedQuestionIDs)

	var result dto.ReconcileResultDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, int64(4), result.PointsAwarded)
}

func TestSubmitProgress_DependencyFailure(t *testing.T) {
	svc := &stubReconcileService{
		err: &service.DependencyError{Op: "points ledger update", Err: errors.New("connection reset")},
	}
	router := newRouter(svc, &stubQueryService{})

	rec := doRequest(router, http.MethodPost, "/api/v1/progress/submissions", "7", []byte(`{}`))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetSummary(t *testing.T) {
	querySvc := &stubQueryService{
		summary: &dto.ProgressSummaryDTO{StudentID: 7, TotalPoints: 12, SolvedCount: 5, AttemptedCount: 2},
	}
	router := newRouter(&stubReconcileService{}, querySvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/progress/summary", "7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary dto.ProgressSummaryDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, int64(12), summary.TotalPoints)
	assert.Equal(t, int64(5), summary.SolvedCount)
}

func TestGetCalendar_MonthNotFound(t *testing.T) {
	querySvc := &stubQueryService{err: service.ErrMonthNotFound}
	router := newRouter(&stubReconcileService{}, querySvc)

	rec := doRequest(router, http.MethodGet, "/api/v1/progress/calendar?month=January+2020", "7", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
