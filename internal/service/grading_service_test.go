package service

import (
	"testing"

	"skillmatrix/internal/model"
	"skillmatrix/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startMixedAttempt opens and submits an attempt with two MCQ and one
// fill-in-blank question, all answered correctly. The attempt lands in
// PENDING_REVIEW with the MCQ score of 2 out of 3.
func startMixedAttempt(t *testing.T, f *fixture) (*model.AssessmentAttempt, *model.User, *model.Component) {
	t.Helper()
	dev := f.developer(t, "dev@example.com")
	component := f.component(t, "Go Backend")
	f.mcq(t, component.ID, 1, "mcq one", "alpha")
	f.mcq(t, component.ID, 1, "mcq two", "beta")
	f.fib(t, component.ID, 1, "fill in", "gamma")
	assessment := f.assessment(t, component.ID, 1, 70, 3)
	invite := f.invite(t, dev.ID, assessment.ID)

	attempt, questions, err := f.assessments.StartAttempt(invite.ID, dev.ID)
	require.NoError(t, err)
	pending, err := f.assessments.SubmitAttempt(attempt.ID, dev.ID, correctAnswersFor(questions))
	require.NoError(t, err)
	require.Equal(t, model.AttemptPendingReview, pending.Status)
	require.Equal(t, 2, pending.Score)
	return pending, dev, component
}

func unreviewedAnswerID(t *testing.T, f *fixture, attemptID uint) uint {
	t.Helper()
	answers, err := f.attemptRepo.GetAnswers(attemptID)
	require.NoError(t, err)
	for _, a := range answers {
		if !a.Reviewed {
			return a.ID
		}
	}
	t.Fatal("no unreviewed answer left")
	return 0
}

func TestGradeAnswerCorrectFinalizesAndRaisesLevel(t *testing.T) {
	f := newFixture(t)
	attempt, dev, component := startMixedAttempt(t, f)

	answerID := unreviewedAnswerID(t, f, attempt.ID)
	answer, err := f.grading.GradeAnswer(answerID, true)
	require.NoError(t, err)
	assert.True(t, answer.Correct)
	assert.True(t, answer.Reviewed)

	var stored model.AssessmentAttempt
	require.NoError(t, f.db.First(&stored, attempt.ID).Error)
	assert.Equal(t, model.AttemptGraded, stored.Status)
	assert.Equal(t, 3, stored.Score)
	assert.True(t, stored.Passed)
	assert.Equal(t, 1, f.levelFor(t, dev.ID, component.ID))
}

func TestGradeAnswerIncorrectFinalizesWithMCQScore(t *testing.T) {
	f := newFixture(t)
	attempt, dev, component := startMixedAttempt(t, f)

	answerID := unreviewedAnswerID(t, f, attempt.ID)
	_, err := f.grading.GradeAnswer(answerID, false)
	require.NoError(t, err)

	var stored model.AssessmentAttempt
	require.NoError(t, f.db.First(&stored, attempt.ID).Error)
	assert.Equal(t, model.AttemptGraded, stored.Status)
	assert.Equal(t, 2, stored.Score)
	// 2 of 3 is 66.7% against a 70% pass mark.
	assert.False(t, stored.Passed)
	assert.Zero(t, f.levelFor(t, dev.ID, component.ID))
}

func TestGradeAnswerPartialReviewKeepsPending(t *testing.T) {
	f := newFixture(t)
	dev := f.developer(t, "dev@example.com")
	component := f.component(t, "Go Backend")
	f.fib(t, component.ID, 1, "first blank", "one")
	f.fib(t, component.ID, 1, "second blank", "two")
	assessment := f.assessment(t, component.ID, 1, 70, 2)
	invite := f.invite(t, dev.ID, assessment.ID)
	attempt, questions, err := f.assessments.StartAttempt(invite.ID, dev.ID)
	require.NoError(t, err)
	_, err = f.assessments.SubmitAttempt(attempt.ID, dev.ID, correctAnswersFor(questions))
	require.NoError(t, err)

	answerID := unreviewedAnswerID(t, f, attempt.ID)
	_, err = f.grading.GradeAnswer(answerID, true)
	require.NoError(t, err)

	var stored model.AssessmentAttempt
	require.NoError(t, f.db.First(&stored, attempt.ID).Error)
	assert.Equal(t, model.AttemptPendingReview, stored.Status, "one verdict still missing")

	// The second verdict completes the review.
	answerID = unreviewedAnswerID(t, f, attempt.ID)
	_, err = f.grading.GradeAnswer(answerID, true)
	require.NoError(t, err)

	require.NoError(t, f.db.First(&stored, attempt.ID).Error)
	assert.Equal(t, model.AttemptGraded, stored.Status)
	assert.Equal(t, 2, stored.Score)
	assert.True(t, stored.Passed)
}

func TestGradeAnswerRepeatedVerdictDoesNotRefinalize(t *testing.T) {
	f := newFixture(t)
	attempt, dev, component := startMixedAttempt(t, f)

	answerID := unreviewedAnswerID(t, f, attempt.ID)
	_, err := f.grading.GradeAnswer(answerID, true)
	require.NoError(t, err)
	require.Equal(t, 1, f.levelFor(t, dev.ID, component.ID))

	// Grading the same answer again touches the answer row only; the
	// compare-and-set on attempt status already moved past PENDING_REVIEW.
	_, err = f.grading.GradeAnswer(answerID, true)
	require.NoError(t, err)

	var stored model.AssessmentAttempt
	require.NoError(t, f.db.First(&stored, attempt.ID).Error)
	assert.Equal(t, model.AttemptGraded, stored.Status)
	assert.Equal(t, 3, stored.Score)
	assert.Equal(t, 1, f.levelFor(t, dev.ID, component.ID))
}

func TestGradeAnswerUnknownAnswer(t *testing.T) {
	f := newFixture(t)
	_, err := f.grading.GradeAnswer(9999, true)
	assert.ErrorIs(t, err, util.ErrAnswerNotFound)
}

func TestListPendingReview(t *testing.T) {
	f := newFixture(t)
	attempt, dev, component := startMixedAttempt(t, f)

	pending, err := f.grading.ListPendingReview()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	entry := pending[0]
	assert.Equal(t, attempt.ID, entry.ID)
	assert.Equal(t, dev.Email, entry.DeveloperEmail)
	assert.Equal(t, component.Name, entry.ComponentName)
	assert.Equal(t, 2, entry.Score)
	assert.Equal(t, 3, entry.TotalQuestions)
	require.Len(t, entry.UnreviewedAnswers, 1)
	assert.Equal(t, "gamma", entry.UnreviewedAnswers[0].GivenAnswer)
	assert.Equal(t, "gamma", entry.UnreviewedAnswers[0].CorrectAnswer)

	// Once graded the queue is empty.
	_, err = f.grading.GradeAnswer(entry.UnreviewedAnswers[0].ID, true)
	require.NoError(t, err)
	pending, err = f.grading.ListPendingReview()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
