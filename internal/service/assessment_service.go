package service

import (
	"errors"
	"strings"
	"time"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"
	"skillmatrix/pkg/monitoring"

	"gorm.io/gorm"
)

// AssessmentService owns the attempt state machine:
// IN_PROGRESS -> {GRADED | PENDING_REVIEW} -> GRADED.
// The PENDING_REVIEW -> GRADED edge is driven by GradingService.
type AssessmentService struct {
	UserRepo       *repository.UserRepository
	AssessmentRepo *repository.AssessmentRepository
	InviteRepo     *repository.InviteRepository
	AttemptRepo    *repository.AttemptRepository
	QuestionRepo   *repository.QuestionRepository
	Selector       *QuestionSelector
	DB             *gorm.DB
}

func NewAssessmentService(
	userRepo *repository.UserRepository,
	assessmentRepo *repository.AssessmentRepository,
	inviteRepo *repository.InviteRepository,
	attemptRepo *repository.AttemptRepository,
	questionRepo *repository.QuestionRepository,
	selector *QuestionSelector,
	db *gorm.DB,
) *AssessmentService {
	return &AssessmentService{
		UserRepo:       userRepo,
		AssessmentRepo: assessmentRepo,
		InviteRepo:     inviteRepo,
		AttemptRepo:    attemptRepo,
		QuestionRepo:   questionRepo,
		Selector:       selector,
		DB:             db,
	}
}

type SubmitAnswer struct {
	QuestionID uint   `json:"questionId" binding:"required"`
	Answer     string `json:"answer"`
}

// CreateInvite offers an assessment to a developer. Duplicate pending
// invites for the same pair are allowed.
func (s *AssessmentService) CreateInvite(developerID, assessmentID uint) (*model.AssessmentInvite, error) {
	if _, err := s.UserRepo.FindByID(developerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDeveloperNotFound
		}
		return nil, err
	}
	if _, err := s.AssessmentRepo.FindByID(assessmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}

	invite := &model.AssessmentInvite{
		DeveloperID:  developerID,
		AssessmentID: assessmentID,
		Status:       model.InvitePending,
	}
	if err := s.InviteRepo.Create(invite); err != nil {
		return nil, err
	}
	return invite, nil
}

// StartAttempt accepts the invite, selects the question set and opens an
// IN_PROGRESS attempt. Starting an already accepted invite creates another
// independent attempt.
func (s *AssessmentService) StartAttempt(inviteID, developerID uint) (*model.AssessmentAttempt, []model.Question, error) {
	invite, err := s.InviteRepo.FindByID(inviteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrInviteNotFound
		}
		return nil, nil, err
	}
	if invite.DeveloperID != developerID {
		return nil, nil, util.ErrInviteNotOwned
	}

	assessment, err := s.AssessmentRepo.FindByID(invite.AssessmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrAssessmentNotFound
		}
		return nil, nil, err
	}

	questions, err := s.Selector.Select(assessment)
	if err != nil {
		return nil, nil, err
	}

	attempt := &model.AssessmentAttempt{
		DeveloperID:    developerID,
		AssessmentID:   assessment.ID,
		TotalQuestions: len(questions),
		Status:         model.AttemptInProgress,
		StartedAt:      time.Now(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		invite.Status = model.InviteAccepted
		if err := tx.Save(invite).Error; err != nil {
			return err
		}
		return tx.Create(attempt).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return attempt, questions, nil
}

// AttemptQuestions re-fetches a bounded question set for an open attempt so
// the client can resume. The shuffle is not stable across calls.
func (s *AssessmentService) AttemptQuestions(attemptID, developerID uint) ([]model.Question, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.DeveloperID != developerID {
		return nil, util.ErrAttemptNotOwned
	}

	assessment, err := s.AssessmentRepo.FindByID(attempt.AssessmentID)
	if err != nil {
		return nil, err
	}
	questions, err := s.Selector.Select(assessment)
	if err != nil {
		return nil, err
	}
	if len(questions) > attempt.TotalQuestions {
		questions = questions[:attempt.TotalQuestions]
	}
	return questions, nil
}

// SubmitAttempt records the answers, auto-grades MCQ answers and either
// finalizes directly or parks the attempt in PENDING_REVIEW when at least
// one fill-in-blank answer needs a manual verdict.
func (s *AssessmentService) SubmitAttempt(attemptID, developerID uint, answers []SubmitAnswer) (*model.AssessmentAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.DeveloperID != developerID {
		return nil, util.ErrAttemptNotOwned
	}
	if attempt.Status != model.AttemptInProgress {
		return nil, util.ErrAttemptNotOpen
	}

	assessment, err := s.AssessmentRepo.FindByID(attempt.AssessmentID)
	if err != nil {
		return nil, err
	}

	hasFillInBlank := false
	correctCount := 0
	entities := make([]model.AttemptAnswer, 0, len(answers))
	for _, a := range answers {
		question, err := s.QuestionRepo.FindByID(a.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrQuestionNotFound
			}
			return nil, err
		}

		entity := model.AttemptAnswer{
			AttemptID:   attempt.ID,
			QuestionID:  question.ID,
			GivenAnswer: a.Answer,
		}
		if question.Type == model.QuestionMCQ {
			entity.Correct = strings.EqualFold(a.Answer, question.CorrectAnswer)
			entity.Reviewed = true
			if entity.Correct {
				correctCount++
			}
		} else {
			hasFillInBlank = true
		}
		entities = append(entities, entity)
	}

	now := time.Now()
	attempt.Score = correctCount
	attempt.CompletedAt = &now

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(entities) > 0 {
			if err := tx.Create(&entities).Error; err != nil {
				return err
			}
		}
		if hasFillInBlank {
			attempt.Status = model.AttemptPendingReview
			return tx.Save(attempt).Error
		}
		if err := tx.Save(attempt).Error; err != nil {
			return err
		}
		_, err := s.finalizeAttempt(tx, attempt, assessment, model.AttemptInProgress)
		return err
	})
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// finalizeAttempt fixes the pass/fail outcome and conditionally raises the
// developer's level. The status transition is a compare-and-set from the
// expected prior status, which makes finalize at-most-once per attempt even
// under concurrent grading. Returns whether this call won the transition.
func (s *AssessmentService) finalizeAttempt(tx *gorm.DB, attempt *model.AssessmentAttempt, assessment *model.Assessment, from model.AttemptStatus) (bool, error) {
	percentage := float64(attempt.Score) / float64(attempt.TotalQuestions) * 100
	passed := percentage >= float64(assessment.PassMarkPercentage)

	res := tx.Model(&model.AssessmentAttempt{}).
		Where("id = ? AND status = ?", attempt.ID, from).
		Updates(map[string]interface{}{
			"score":  attempt.Score,
			"passed": passed,
			"status": model.AttemptGraded,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// Another grading call finalized first; keep its outcome.
		return false, nil
	}

	attempt.Passed = passed
	attempt.Status = model.AttemptGraded

	if !passed {
		monitoring.AttemptsFinalized.WithLabelValues("failed").Inc()
		return true, nil
	}
	monitoring.AttemptsFinalized.WithLabelValues("passed").Inc()
	return true, s.raiseDeveloperLevel(tx, attempt.DeveloperID, assessment)
}

// raiseDeveloperLevel applies the high-water-mark rule: the stored level
// only moves up, and only when the passed assessment's level exceeds it.
// The conditional UPDATE serializes concurrent passes on the same pair at
// the database.
func (s *AssessmentService) raiseDeveloperLevel(tx *gorm.DB, developerID uint, assessment *model.Assessment) error {
	var dl model.DeveloperLevel
	err := tx.Where("developer_id = ? AND component_id = ?", developerID, assessment.ComponentID).
		First(&dl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		dl = model.DeveloperLevel{
			DeveloperID: developerID,
			ComponentID: assessment.ComponentID,
		}
		if err := tx.Create(&dl).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	now := time.Now()
	res := tx.Model(&model.DeveloperLevel{}).
		Where("developer_id = ? AND component_id = ? AND current_level < ?",
			developerID, assessment.ComponentID, assessment.Level).
		Updates(map[string]interface{}{
			"current_level":    assessment.Level,
			"last_level_up_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		monitoring.LevelUps.Inc()
	}
	return nil
}
