package service

import (
	"github.com/studypulse/backend/internal/model"
)

// Point weights per difficulty. Unknown difficulties award nothing so a
// malformed snapshot can never inflate the ledger.
const (
	PointsEasy   int64 = 1
	PointsMedium int64 = 2
	PointsHard   int64 = 3
)

type ScoringService interface {
	PointsFor(difficulty string) int64
}

type scoringServiceImpl struct{}

func NewScoringService() ScoringService {
	return &scoringServiceImpl{}
}

func (s *scoringServiceImpl) PointsFor(difficulty string) int64 {
	switch difficulty {
	case model.DifficultyEasy:
		return PointsEasy
	case model.DifficultyMedium:
		return PointsMedium
	case model.DifficultyHard:
		return PointsHard
	default:
		return 0
	}
}
