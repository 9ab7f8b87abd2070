package service

import (
	"math/rand"
	"sync"
	"time"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
)

// QuestionSelector assembles the randomized question set for an attempt.
// Higher-level assessments retest lower-level material: the pool is every
// question of the component with difficulty <= the assessment level.
type QuestionSelector struct {
	QuestionRepo *repository.QuestionRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewQuestionSelector(questionRepo *repository.QuestionRepository) *QuestionSelector {
	return NewQuestionSelectorWithSource(questionRepo, rand.NewSource(time.Now().UnixNano()))
}

// NewQuestionSelectorWithSource takes an explicit rand source so tests can
// pin the shuffle order.
func NewQuestionSelectorWithSource(questionRepo *repository.QuestionRepository, src rand.Source) *QuestionSelector {
	return &QuestionSelector{
		QuestionRepo: questionRepo,
		rng:          rand.New(src),
	}
}

// Select returns at most assessment.NumberOfQuestions questions, uniformly
// shuffled. A pool smaller than the target count is not an error; the
// attempt simply gets fewer questions.
func (s *QuestionSelector) Select(assessment *model.Assessment) ([]model.Question, error) {
	pool, err := s.QuestionRepo.FindPool(assessment.ComponentID, assessment.Level)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	n := assessment.NumberOfQuestions
	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n], nil
}
