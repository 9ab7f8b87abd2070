package service

import (
	"testing"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalog(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	return NewCatalogService(
		repository.NewTeamRepository(db),
		repository.NewProjectRepository(db),
		repository.NewComponentRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAssessmentRepository(db),
		nil, // cache degrades to direct reads
	)
}

func TestCatalogTeamsWithProjectCounts(t *testing.T) {
	db := newTestDB(t)
	catalog := newCatalog(t, db)

	team := model.Team{Name: "Platform"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&model.Project{TeamID: team.ID, Name: "P1"}).Error)
	require.NoError(t, db.Create(&model.Project{TeamID: team.ID, Name: "P2"}).Error)

	views, err := catalog.Teams()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Platform", views[0].Name)
	assert.EqualValues(t, 2, views[0].ProjectCount)
}

func TestCatalogQuestionsWithoutCache(t *testing.T) {
	db := newTestDB(t)
	catalog := newCatalog(t, db)

	component := model.Component{Name: "Go Backend"}
	require.NoError(t, db.Create(&component).Error)
	require.NoError(t, db.Create(&model.Question{
		ComponentID:   component.ID,
		QuestionText:  "q",
		Type:          model.QuestionMCQ,
		CorrectAnswer: "a",
	}).Error)

	questions, err := catalog.QuestionsByComponent(component.ID)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "a", questions[0].CorrectAnswer, "admin view keeps canonical answers")
}

func TestCatalogCreateAssessmentIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	catalog := newCatalog(t, db)

	component := model.Component{Name: "Go Backend"}
	require.NoError(t, db.Create(&component).Error)

	first, err := catalog.CreateAssessment(component.ID, 1, 70, 10, 1)
	require.NoError(t, err)
	second, err := catalog.CreateAssessment(component.ID, 1, 80, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 70, second.PassMarkPercentage)
}

func TestCatalogCreateAssessmentUnknownComponent(t *testing.T) {
	db := newTestDB(t)
	catalog := newCatalog(t, db)

	_, err := catalog.CreateAssessment(9999, 1, 70, 10, 1)
	assert.ErrorIs(t, err, util.ErrComponentNotFound)
}

func TestCatalogAssessmentViewsIncludeComponent(t *testing.T) {
	db := newTestDB(t)
	catalog := newCatalog(t, db)

	component := model.Component{Name: "Go Backend", TechStack: "Go"}
	require.NoError(t, db.Create(&component).Error)
	_, err := catalog.CreateAssessment(component.ID, 2, 70, 10, 1)
	require.NoError(t, err)

	views, err := catalog.Assessments()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Go Backend", views[0].ComponentName)
	assert.Equal(t, "Go", views[0].TechStack)
	assert.Equal(t, 2, views[0].Level)
}
