package service

import (
	"testing"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(f *fixture) *UserService {
	return NewUserService(
		repository.NewUserRepository(f.db),
		f.levelRepo,
		f.attemptRepo,
		repository.NewInviteRepository(f.db),
		repository.NewAssessmentRepository(f.db),
		repository.NewComponentRepository(f.db),
	)
}

func TestUserLevelsAndAttempts(t *testing.T) {
	f := newFixture(t)
	users := newUserService(f)

	dev := f.developer(t, "dev@example.com")
	component := f.component(t, "Go Backend")
	f.mcq(t, component.ID, 1, "q", "a")
	assessment := f.assessment(t, component.ID, 1, 70, 1)
	invite := f.invite(t, dev.ID, assessment.ID)
	attempt, questions, err := f.assessments.StartAttempt(invite.ID, dev.ID)
	require.NoError(t, err)
	_, err = f.assessments.SubmitAttempt(attempt.ID, dev.ID, correctAnswersFor(questions))
	require.NoError(t, err)

	levels, err := users.Levels(dev.ID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "Go Backend", levels[0].ComponentName)
	assert.Equal(t, 1, levels[0].CurrentLevel)
	assert.NotNil(t, levels[0].LastLevelUpAt)

	attempts, err := users.Attempts(dev.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, model.AttemptGraded, attempts[0].Status)
	assert.True(t, attempts[0].Passed)
	assert.Equal(t, 1, attempts[0].Level)
}

func TestUserPendingInvites(t *testing.T) {
	f := newFixture(t)
	users := newUserService(f)

	dev := f.developer(t, "dev@example.com")
	component := f.component(t, "Go Backend")
	f.mcq(t, component.ID, 1, "q", "a")
	assessment := f.assessment(t, component.ID, 1, 70, 1)
	invite := f.invite(t, dev.ID, assessment.ID)

	pending, err := users.PendingInvites(dev.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, model.InvitePending, pending[0].Status)
	assert.Equal(t, "Go Backend", pending[0].ComponentName)

	// An accepted invite drops off the pending list.
	_, _, err = f.assessments.StartAttempt(invite.ID, dev.ID)
	require.NoError(t, err)
	pending, err = users.PendingInvites(dev.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestUserUnknownDeveloper(t *testing.T) {
	f := newFixture(t)
	users := newUserService(f)

	_, err := users.User(9999)
	assert.ErrorIs(t, err, util.ErrDeveloperNotFound)
}
