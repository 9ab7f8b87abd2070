package repository

import (
	"testing"

	"skillmatrix/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindPoolIncludesLowerDifficulties(t *testing.T) {
	db := newTestDB(t)
	repo := NewQuestionRepository(db)

	component := model.Component{Name: "Go Backend"}
	require.NoError(t, db.Create(&component).Error)
	other := model.Component{Name: "React Frontend"}
	require.NoError(t, db.Create(&other).Error)

	for level := 1; level <= 3; level++ {
		require.NoError(t, db.Create(&model.Question{
			ComponentID:     component.ID,
			QuestionText:    "q",
			Type:            model.QuestionMCQ,
			DifficultyLevel: level,
			CorrectAnswer:   "a",
		}).Error)
	}
	// A question on another component must never leak into the pool.
	require.NoError(t, db.Create(&model.Question{
		ComponentID:     other.ID,
		QuestionText:    "q",
		Type:            model.QuestionMCQ,
		DifficultyLevel: 1,
		CorrectAnswer:   "a",
	}).Error)

	pool, err := repo.FindPool(component.ID, 2)
	require.NoError(t, err)
	assert.Len(t, pool, 2)
	for _, q := range pool {
		assert.Equal(t, component.ID, q.ComponentID)
		assert.LessOrEqual(t, q.DifficultyLevel, 2)
	}
}
