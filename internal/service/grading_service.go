package service

import (
	"errors"
	"time"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"

	"gorm.io/gorm"
)

// GradingService applies manual verdicts to fill-in-blank answers. Once
// every answer of an attempt carries a verdict it recomputes the score and
// finalizes through the attempt engine.
type GradingService struct {
	AttemptRepo    *repository.AttemptRepository
	AssessmentRepo *repository.AssessmentRepository
	UserRepo       *repository.UserRepository
	ComponentRepo  *repository.ComponentRepository
	QuestionRepo   *repository.QuestionRepository
	Assessments    *AssessmentService
	DB             *gorm.DB
}

func NewGradingService(
	attemptRepo *repository.AttemptRepository,
	assessmentRepo *repository.AssessmentRepository,
	userRepo *repository.UserRepository,
	componentRepo *repository.ComponentRepository,
	questionRepo *repository.QuestionRepository,
	assessments *AssessmentService,
	db *gorm.DB,
) *GradingService {
	return &GradingService{
		AttemptRepo:    attemptRepo,
		AssessmentRepo: assessmentRepo,
		UserRepo:       userRepo,
		ComponentRepo:  componentRepo,
		QuestionRepo:   questionRepo,
		Assessments:    assessments,
		DB:             db,
	}
}

// GradeAnswer records a verdict for one answer. Re-grading with the same
// verdict is a no-op beyond the answer row itself: an attempt finalizes at
// most once, so a repeated verdict cannot double-apply a level-up.
func (s *GradingService) GradeAnswer(answerID uint, correct bool) (*model.AttemptAnswer, error) {
	var answer model.AttemptAnswer

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&answer, answerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrAnswerNotFound
			}
			return err
		}

		answer.Correct = correct
		answer.Reviewed = true
		if err := tx.Save(&answer).Error; err != nil {
			return err
		}

		var siblings []model.AttemptAnswer
		if err := tx.Where("attempt_id = ?", answer.AttemptID).Find(&siblings).Error; err != nil {
			return err
		}
		correctCount := 0
		for _, a := range siblings {
			if !a.Reviewed {
				// Still waiting for other verdicts.
				return nil
			}
			if a.Correct {
				correctCount++
			}
		}

		var attempt model.AssessmentAttempt
		if err := tx.First(&attempt, answer.AttemptID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrAttemptNotFound
			}
			return err
		}
		var assessment model.Assessment
		if err := tx.First(&assessment, attempt.AssessmentID).Error; err != nil {
			return err
		}

		attempt.Score = correctCount
		_, err := s.Assessments.finalizeAttempt(tx, &attempt, &assessment, model.AttemptPendingReview)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

type UnreviewedAnswer struct {
	ID            uint   `json:"id"`
	QuestionText  string `json:"questionText"`
	GivenAnswer   string `json:"givenAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
}

type PendingReviewAttempt struct {
	ID                uint               `json:"id"`
	DeveloperName     string             `json:"developerName"`
	DeveloperEmail    string             `json:"developerEmail"`
	ComponentName     string             `json:"componentName"`
	Level             int                `json:"level"`
	Score             int                `json:"score"`
	TotalQuestions    int                `json:"totalQuestions"`
	StartedAt         time.Time          `json:"startedAt"`
	UnreviewedAnswers []UnreviewedAnswer `json:"unreviewedAnswers"`
}

// ListPendingReview returns every attempt waiting on manual verdicts,
// with the unreviewed answers a grader has to judge.
func (s *GradingService) ListPendingReview() ([]PendingReviewAttempt, error) {
	attempts, err := s.AttemptRepo.FindByStatusWithAnswers(model.AttemptPendingReview)
	if err != nil {
		return nil, err
	}

	result := make([]PendingReviewAttempt, 0, len(attempts))
	for _, attempt := range attempts {
		developer, err := s.UserRepo.FindByID(attempt.DeveloperID)
		if err != nil {
			return nil, err
		}
		assessment, err := s.AssessmentRepo.FindByID(attempt.AssessmentID)
		if err != nil {
			return nil, err
		}
		component, err := s.ComponentRepo.FindByID(assessment.ComponentID)
		if err != nil {
			return nil, err
		}

		entry := PendingReviewAttempt{
			ID:             attempt.ID,
			DeveloperName:  developer.FullName,
			DeveloperEmail: developer.Email,
			ComponentName:  component.Name,
			Level:          assessment.Level,
			Score:          attempt.Score,
			TotalQuestions: attempt.TotalQuestions,
			StartedAt:      attempt.StartedAt,
		}
		for _, ans := range attempt.Answers {
			if ans.Reviewed {
				continue
			}
			question, err := s.QuestionRepo.FindByID(ans.QuestionID)
			if err != nil {
				return nil, err
			}
			entry.UnreviewedAnswers = append(entry.UnreviewedAnswers, UnreviewedAnswer{
				ID:            ans.ID,
				QuestionText:  question.QuestionText,
				GivenAnswer:   ans.GivenAnswer,
				CorrectAnswer: question.CorrectAnswer,
			})
		}
		result = append(result, entry)
	}
	return result, nil
}
