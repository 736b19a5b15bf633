package service

import (
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/studypulse/backend/internal/clock"
	"github.com/studypulse/backend/internal/dto"
	"github.com/studypulse/backend/internal/model"
	"github.com/studypulse/backend/internal/repository"
	"gorm.io/gorm"
)

// ReconcileService diffs a submission batch against the student's prior
// history and drives the solved/attempted stores, the points ledger, the
// per-question counters, and the monthly calendar to a consistent state.
type ReconcileService interface {
	Reconcile(studentID uint, req dto.SubmitProgressRequest) (*dto.ReconcileResultDTO, error)
}

type reconcileService struct {
	solvedRepo    repository.SolvedRecordRepository
	attemptedRepo repository.AttemptedRecordRepository
	questionRepo  repository.QuestionRepository
	receiptRepo   repository.SubmissionReceiptRepository
	scoring       ScoringService
	clk           clock.Clock
	db            *gorm.DB // writes run inside one transaction
}

func NewReconcileService(
	solvedRepo repository.SolvedRecordRepository,
	attemptedRepo repository.AttemptedRecordRepository,
	questionRepo repository.QuestionRepository,
	receiptRepo repository.SubmissionReceiptRepository,
	scoring ScoringService,
	clk clock.Clock,
	db *gorm.DB,
) ReconcileService {
	return &reconcileService{
		solvedRepo:    solvedRepo,
		attemptedRepo: attemptedRepo,
		questionRepo:  questionRepo,
		receiptRepo:   receiptRepo,
		scoring:       scoring,
		clk:           clk,
		db:            db,
	}
}

// classification is the diff of one batch against prior history.
type classification struct {
	reSolved     []model.SolvedRecord    // previously solved, correct again
	regressed    []model.SolvedRecord    // previously solved, missed now
	transitioned []model.AttemptedRecord // previously attempted, solved now
	reAttempted  []model.AttemptedRecord // previously attempted, missed again
	newSolvedIDs []uint                  // never seen before, correct
	newMissIDs   []uint                  // never seen before, missed
}

// Reconcile executes the full reconciliation workflow. Reads (history
// load, metadata lookups) run up front; every write runs inside a single
// database transaction, so a reported failure means nothing was applied
// and the caller can safely retry the whole batch. A submission id, when
// present, dedups retries that raced the original.
func (s *reconcileService) Reconcile(studentID uint, req dto.SubmitProgressRequest) (*dto.ReconcileResultDTO, error) {
	if studentID == 0 {
		return nil, ErrUnauthenticated
	}

	if req.SubmissionID != "" {
		applied, err := s.receiptRepo.Exists(studentID, req.SubmissionID)
		if err != nil {
			return nil, dependencyErr("submission receipt lookup", err)
		}
		if applied {
			log.Info().Uint("studentID", studentID).Str("submissionID", req.SubmissionID).
				Msg("Duplicate submission, acknowledging without re-applying")
			return &dto.ReconcileResultDTO{Success: true, Duplicate: true}, nil
		}
	}

	correct := uniqueIDs(req.CorrectQuestionIDs)
	// A question listed in both sets was ultimately answered correctly,
	// so the correct outcome wins and the miss entry is discarded.
	missed := subtractIDs(uniqueIDs(req.AttemptedQuestionIDs), correct)

	// Step 1: load prior state.
	solvedRecords, err := s.solvedRepo.FindByStudent(studentID)
	if err != nil {
		return nil, dependencyErr("solved record load", err)
	}
	attemptedRecords, err := s.attemptedRepo.FindByStudent(studentID)
	if err != nil {
		return nil, dependencyErr("attempted record load", err)
	}

	cls := classify(solvedRecords, attemptedRecords, correct, missed)

	// Steps 4–5 metadata: the two lookups are independent read-only calls,
	// so they run concurrently (same fan-out the full-test scorer used).
	newSolvedQuestions, newMissQuestions, err := s.fetchMetadata(cls.newSolvedIDs, cls.newMissIDs)
	if err != nil {
		return nil, err
	}

	now := s.clk.Now()
	monthLabel := model.MonthLabel(now)
	dayIndex := now.Day() - 1

	// Step 8 input: points accrue for fresh solves and for
	// attempted-to-solved transitions, never for re-solves.
	var points int64
	for _, q := range newSolvedQuestions {
		points += s.scoring.PointsFor(q.Difficulty)
	}
	for _, rec := range cls.transitioned {
		points += s.scoring.PointsFor(rec.Difficulty)
	}

	// Step 9 input: every question solved for the first time this batch.
	counterIDs := make([]uint, 0, len(newSolvedQuestions)+len(cls.transitioned))
	for _, q := range newSolvedQuestions {
		counterIDs = append(counterIDs, q.ID)
	}
	for _, rec := range cls.transitioned {
		counterIDs = append(counterIDs, rec.QuestionID)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		solvedRepo := repository.NewSolvedRecordRepository(tx)
		attemptedRepo := repository.NewAttemptedRecordRepository(tx)
		questionRepo := repository.NewQuestionRepository(tx)
		studentRepo := repository.NewStudentRepository(tx)
		indexRepo := repository.NewProgressIndexRepository(tx)
		progressRepo := repository.NewMonthlyProgressRepository(tx, indexRepo)
		receiptRepo := repository.NewSubmissionReceiptRepository(tx)

		// Step 2: re-solved questions bump their solve count.
		if err := solvedRepo.UpdateCounts(cls.reSolved, 1); err != nil {
			return dependencyErr("re-solved count update", err)
		}
		// Step 3: regressions decrement, clamped at zero. The solved record
		// stays and no attempted record is created for the regression.
		if err := solvedRepo.UpdateCounts(cls.regressed, -1); err != nil {
			return dependencyErr("regression count update", err)
		}

		// Step 4: first-ever solves.
		newSolved := make([]model.SolvedRecord, 0, len(newSolvedQuestions))
		for _, q := range newSolvedQuestions {
			newSolved = append(newSolved, model.NewSolvedRecord(studentID, q, now))
		}
		if err := solvedRepo.InsertMany(newSolved); err != nil {
			return dependencyErr("solved record insert", err)
		}

		// Step 5: first-ever misses.
		newMisses := make([]model.AttemptedRecord, 0, len(newMissQuestions))
		for _, q := range newMissQuestions {
			newMisses = append(newMisses, model.NewAttemptedRecord(studentID, q, now))
		}
		if err := attemptedRepo.InsertMany(newMisses); err != nil {
			return dependencyErr("attempted record insert", err)
		}

		// Step 6: attempted-to-solved transitions carry the snapshot over.
		if len(cls.transitioned) > 0 {
			promoted := make([]model.SolvedRecord, 0, len(cls.transitioned))
			for _, rec := range cls.transitioned {
				promoted = append(promoted, rec.ToSolved(now))
			}
			if err := attemptedRepo.DeleteMany(cls.transitioned); err != nil {
				return dependencyErr("attempted record delete", err)
			}
			if err := solvedRepo.InsertMany(promoted); err != nil {
				return dependencyErr("promoted record insert", err)
			}
		}

		// Step 7: repeat misses bump their attempt count (increment-or-create,
		// concurrent tabs can race this with step 5's insert).
		if err := attemptedRepo.UpdateCounts(cls.reAttempted, 1); err != nil {
			return dependencyErr("re-attempted count update", err)
		}

		// Step 8: points are monotonic, regressions never deduct.
		if err := studentRepo.IncrementTotalPoints(studentID, points); err != nil {
			return dependencyErr("points ledger update", err)
		}

		// Step 9: global per-question counters.
		if err := questionRepo.IncrementCorrectAnswerCount(counterIDs, 1); err != nil {
			return dependencyErr("correct answer counter update", err)
		}

		// Step 10: calendar. The month (and the index entry pointing at it)
		// comes into existence on the first submission; every correct ID
		// that reconciled lands in today's bucket. IDs without metadata
		// never produced a solved record, so they stay out of the calendar
		// as well.
		calendarIDs := make([]uint, 0, len(cls.reSolved)+len(cls.transitioned)+len(newSolvedQuestions))
		for _, rec := range cls.reSolved {
			calendarIDs = append(calendarIDs, rec.QuestionID)
		}
		for _, rec := range cls.transitioned {
			calendarIDs = append(calendarIDs, rec.QuestionID)
		}
		for _, q := range newSolvedQuestions {
			calendarIDs = append(calendarIDs, q.ID)
		}
		progress, err := progressRepo.GetOrCreate(studentID, monthLabel)
		if err != nil {
			return dependencyErr("monthly progress load", err)
		}
		if err := progressRepo.AppendToDay(progress.ID, dayIndex, calendarIDs); err != nil {
			return dependencyErr("day bucket update", err)
		}

		if req.SubmissionID != "" {
			if err := receiptRepo.Create(studentID, req.SubmissionID); err != nil {
				return dependencyErr("submission receipt create", err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("studentID", studentID).Msg("Reconciliation aborted")
		if IsDependencyFailure(err) {
			return nil, err
		}
		return nil, dependencyErr("reconciliation transaction", err)
	}

	result := &dto.ReconcileResultDTO{
		Success:        true,
		NewlySolved:    len(newSolvedQuestions),
		ReSolved:       len(cls.reSolved),
		Regressed:      len(cls.regressed),
		NewlyAttempted: len(newMissQuestions),
		ReAttempted:    len(cls.reAttempted),
		Transitioned:   len(cls.transitioned),
		PointsAwarded:  points,
		Month:          monthLabel,
	}
	log.Info().Uint("studentID", studentID).
		Int("newlySolved", result.NewlySolved).
		Int("transitioned", result.Transitioned).
		Int64("pointsAwarded", points).
		Str("month", monthLabel).
		Msg("Reconciliation completed")
	return result, nil
}

// classify diffs the batch against prior history. correct and missed
// must not overlap (Reconcile drops shared IDs from missed), and a
// question that was both previously solved and previously attempted
// cannot exist (step 6 removes the attempted record on transition), so
// the buckets below are disjoint.
func classify(solved []model.SolvedRecord, attempted []model.AttemptedRecord, correct, missed []uint) classification {
	solvedByQID := make(map[uint]model.SolvedRecord, len(solved))
	for _, rec := range solved {
		solvedByQID[rec.QuestionID] = rec
	}
	attemptedByQID := make(map[uint]model.AttemptedRecord, len(attempted))
	for _, rec := range attempted {
		attemptedByQID[rec.QuestionID] = rec
	}

	var cls classification
	for _, qid := range correct {
		if rec, ok := solvedByQID[qid]; ok {
			cls.reSolved = append(cls.reSolved, rec)
		} else if rec, ok := attemptedByQID[qid]; ok {
			cls.transitioned = append(cls.transitioned, rec)
		} else {
			cls.newSolvedIDs = append(cls.newSolvedIDs, qid)
		}
	}
	for _, qid := range missed {
		if rec, ok := solvedByQID[qid]; ok {
			cls.regressed = append(cls.regressed, rec)
		} else if rec, ok := attemptedByQID[qid]; ok {
			cls.reAttempted = append(cls.reAttempted, rec)
		} else {
			cls.newMissIDs = append(cls.newMissIDs, qid)
		}
	}
	return cls
}

// fetchMetadata looks up question metadata for the two fresh-ID sets in
// parallel. IDs the provider does not know are dropped with a warning;
// upstream validation is expected to have filtered them already.
func (s *reconcileService) fetchMetadata(newSolvedIDs, newMissIDs []uint) ([]model.Question, []model.Question, error) {
	var (
		wg        sync.WaitGroup
		solvedQs  []model.Question
		missQs    []model.Question
		solvedErr error
		missErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		solvedQs, solvedErr = s.questionRepo.FindByIDs(newSolvedIDs)
	}()
	go func() {
		defer wg.Done()
		missQs, missErr = s.questionRepo.FindByIDs(newMissIDs)
	}()
	wg.Wait()

	if solvedErr != nil {
		return nil, nil, dependencyErr("question metadata lookup (solved)", solvedErr)
	}
	if missErr != nil {
		return nil, nil, dependencyErr("question metadata lookup (attempted)", missErr)
	}
	if len(solvedQs) < len(newSolvedIDs) || len(missQs) < len(newMissIDs) {
		log.Warn().
			Int("requestedSolved", len(newSolvedIDs)).Int("foundSolved", len(solvedQs)).
			Int("requestedMissed", len(newMissIDs)).Int("foundMissed", len(missQs)).
			Msg("Some submitted question IDs have no metadata, skipping them")
	}
	return solvedQs, missQs, nil
}

// subtractIDs returns the IDs of a that do not appear in b.
func subtractIDs(a, b []uint) []uint {
	if len(a) == 0 || len(b) == 0 {
		return a
	}
	drop := make(map[uint]bool, len(b))
	for _, id := range b {
		drop[id] = true
	}
	out := a[:0]
	for _, id := range a {
		if !drop[id] {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// uniqueIDs drops duplicates while keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
