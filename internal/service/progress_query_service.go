package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studypulse/backend/internal/clock"
	"github.com/studypulse/backend/internal/dto"
	"github.com/studypulse/backend/internal/model"
	"github.com/studypulse/backend/internal/repository"
	"gorm.io/gorm"
)

// ErrMonthNotFound is returned when a student has no calendar for the
// requested month.
var ErrMonthNotFound = errors.New("no progress recorded for that month")

// ProgressQueryService is the read side of the progress subsystem.
type ProgressQueryService interface {
	GetSummary(studentID uint) (*dto.ProgressSummaryDTO, error)
	GetSolved(studentID uint) ([]dto.SolvedRecordDTO, error)
	GetAttempted(studentID uint) ([]dto.AttemptedRecordDTO, error)
	// GetCalendar returns the month's day buckets. An empty monthLabel
	// means the current month.
	GetCalendar(studentID uint, monthLabel string) (*dto.MonthlyProgressDTO, error)
}

type progressQueryService struct {
	solvedRepo    repository.SolvedRecordRepository
	attemptedRepo repository.AttemptedRecordRepository
	progressRepo  repository.MonthlyProgressRepository
	studentRepo   repository.StudentRepository
	clk           clock.Clock
}

func NewProgressQueryService(
	solvedRepo repository.SolvedRecordRepository,
	attemptedRepo repository.AttemptedRecordRepository,
	progressRepo repository.MonthlyProgressRepository,
	studentRepo repository.StudentRepository,
	clk clock.Clock,
) ProgressQueryService {
	return &progressQueryService{
		solvedRepo:    solvedRepo,
		attemptedRepo: attemptedRepo,
		progressRepo:  progressRepo,
		studentRepo:   studentRepo,
		clk:           clk,
	}
}

func (s *progressQueryService) GetSummary(studentID uint) (*dto.ProgressSummaryDTO, error) {
	summary := &dto.ProgressSummaryDTO{StudentID: studentID}

	student, err := s.studentRepo.FindByID(studentID)
	switch {
	case err == nil:
		summary.TotalPoints = student.TotalPoints
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Profile rows are owned by the profile service; a student who has
		// never earned points may not have one yet.
	default:
		return nil, fmt.Errorf("error fetching student profile: %w", err)
	}

	solvedIDs, err := s.solvedRepo.FindIDsByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error counting solved records: %w", err)
	}
	attemptedIDs, err := s.attemptedRepo.FindIDsByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error counting attempted records: %w", err)
	}
	summary.SolvedCount = int64(len(solvedIDs))
	summary.AttemptedCount = int64(len(attemptedIDs))
	return summary, nil
}

func (s *progressQueryService) GetSolved(studentID uint) ([]dto.SolvedRecordDTO, error) {
	records, err := s.solvedRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to load solved records")
		return nil, fmt.Errorf("error fetching solved records: %w", err)
	}
	dtos := make([]dto.SolvedRecordDTO, 0, len(records))
	for i := range records {
		var d dto.SolvedRecordDTO
		if err := copier.Copy(&d, &records[i]); err != nil {
			return nil, fmt.Errorf("error preparing solved record response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *progressQueryService) GetAttempted(studentID uint) ([]dto.AttemptedRecordDTO, error) {
	records, err := s.attemptedRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Failed to load attempted records")
		return nil, fmt.Errorf("error fetching attempted records: %w", err)
	}
	dtos := make([]dto.AttemptedRecordDTO, 0, len(records))
	for i := range records {
		var d dto.AttemptedRecordDTO
		if err := copier.Copy(&d, &records[i]); err != nil {
			return nil, fmt.Errorf("error preparing attempted record response: %w", err)
		}
		dtos = append(dtos, d)
	}
	return dtos, nil
}

func (s *progressQueryService) GetCalendar(studentID uint, monthLabel string) (*dto.MonthlyProgressDTO, error) {
	if monthLabel == "" {
		monthLabel = model.MonthLabel(s.clk.Now())
	}
	progress, err := s.progressRepo.FindByStudentAndMonth(studentID, monthLabel)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMonthNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching monthly progress: %w", err)
	}

	days := make([][]uint, model.DaysInCalendar)
	for i, bucket := range progress.Days {
		if bucket == nil {
			days[i] = []uint{}
		} else {
			days[i] = bucket
		}
	}
	return &dto.MonthlyProgressDTO{Month: progress.Month, Days: days}, nil
}
