package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studypulse/backend/internal/dto"
	"github.com/studypulse/backend/internal/service"
)

type ProgressController struct {
	reconcileSvc service.ReconcileService
	querySvc     service.ProgressQueryService
}

func NewProgressController(reconcileSvc service.ReconcileService, querySvc service.ProgressQueryService) *ProgressController {
	return &ProgressController{
		reconcileSvc: reconcileSvc,
		querySvc:     querySvc,
	}
}

// SubmitProgress godoc
// @Summary Submit a batch of question outcomes for a study session
// @Description Reconciles the batch against the student's history: updates solved/attempted records, awards points, and fills the activity calendar.
// @Tags progress
// @Accept json
// @Produce json
// @Param X-Student-ID header int true "Authenticated student ID (set by the session layer)"
// @Param batch body dto.SubmitProgressRequest true "Correct and attempted question ID sets"
// @Success 200 {object} dto.ReconcileResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "No student identity"
// @Failure 502 {object} dto.ErrorResponse "A store or the metadata provider failed; retry the whole batch"
// @Router /progress/submissions [post]
func (ctrl *ProgressController) SubmitProgress(c *gin.Context) {
	var req dto.SubmitProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitProgressRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.reconcileSvc.Reconcile(currentStudentID(c), req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Failed to reconcile submission batch")
		if service.IsDependencyFailure(err) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "progress update failed, please retry the submission"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to process submission: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSummary godoc
// @Summary Get the student's headline progress numbers
// @Tags progress
// @Produce json
// @Param X-Student-ID header int true "Authenticated student ID"
// @Success 200 {object} dto.ProgressSummaryDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress/summary [get]
func (ctrl *ProgressController) GetSummary(c *gin.Context) {
	summary, err := ctrl.querySvc.GetSummary(currentStudentID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to build progress summary")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve progress summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSolved godoc
// @Summary List the student's solved question records
// @Tags progress
// @Produce json
// @Param X-Student-ID header int true "Authenticated student ID"
// @Success 200 {array} dto.SolvedRecordDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress/solved [get]
func (ctrl *ProgressController) GetSolved(c *gin.Context) {
	records, err := ctrl.querySvc.GetSolved(currentStudentID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list solved records")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve solved records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetAttempted godoc
// @Summary List the student's attempted-but-unsolved question records
// @Tags progress
// @Produce json
// @Param X-Student-ID header int true "Authenticated student ID"
// @Success 200 {array} dto.AttemptedRecordDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress/attempted [get]
func (ctrl *ProgressController) GetAttempted(c *gin.Context) {
	records, err := ctrl.querySvc.GetAttempted(currentStudentID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list attempted records")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve attempted records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetCalendar godoc
// @Summary Get the student's activity calendar for a month
// @Description Returns the 31 day buckets of solved question IDs. Defaults to the current month when no label is given.
// @Tags progress
// @Produce json
// @Param X-Student-ID header int true "Authenticated student ID"
// @Param month query string false "Month label, e.g. 'March 2025'"
// @Success 200 {object} dto.MonthlyProgressDTO
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No progress recorded for that month"
// @Failure 500 {object} dto.ErrorResponse
// @Router /progress/calendar [get]
func (ctrl *ProgressController) GetCalendar(c *gin.Context) {
	calendar, err := ctrl.querySvc.GetCalendar(currentStudentID(c), c.Query("month"))
	if err != nil {
		if errors.Is(err, service.ErrMonthNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Failed to load monthly calendar")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to retrieve monthly progress"})
		return
	}
	c.JSON(http.StatusOK, calendar)
}
