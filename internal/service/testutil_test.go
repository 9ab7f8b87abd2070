package service

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Project{},
		&model.Component{},
		&model.Question{},
		&model.Assessment{},
		&model.AssessmentInvite{},
		&model.AssessmentAttempt{},
		&model.AttemptAnswer{},
		&model.DeveloperLevel{},
	))
	return db
}

type fixture struct {
	db          *gorm.DB
	attemptRepo *repository.AttemptRepository
	levelRepo   *repository.DeveloperLevelRepository
	assessments *AssessmentService
	grading     *GradingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	userRepo := repository.NewUserRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	levelRepo := repository.NewDeveloperLevelRepository(db)

	selector := NewQuestionSelectorWithSource(questionRepo, rand.NewSource(1))
	assessments := NewAssessmentService(userRepo, assessmentRepo, inviteRepo, attemptRepo, questionRepo, selector, db)
	grading := NewGradingService(attemptRepo, assessmentRepo, userRepo, componentRepo, questionRepo, assessments, db)

	return &fixture{
		db:          db,
		attemptRepo: attemptRepo,
		levelRepo:   levelRepo,
		assessments: assessments,
		grading:     grading,
	}
}

func (f *fixture) developer(t *testing.T, email string) *model.User {
	t.Helper()
	u := &model.User{Email: email, FullName: "Test Developer", Role: model.RoleDeveloper, Active: true}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) component(t *testing.T, name string) *model.Component {
	t.Helper()
	team := &model.Team{Name: "Test Team"}
	require.NoError(t, f.db.Create(team).Error)
	project := &model.Project{TeamID: team.ID, Name: "Test Project"}
	require.NoError(t, f.db.Create(project).Error)
	component := &model.Component{ProjectID: project.ID, Name: name, TechStack: "Go"}
	require.NoError(t, f.db.Create(component).Error)
	return component
}

func (f *fixture) mcq(t *testing.T, componentID uint, level int, text, answer string) *model.Question {
	t.Helper()
	opts, _ := json.Marshal([]string{answer, "wrong one", "wrong two", "wrong three"})
	q := &model.Question{
		ComponentID:     componentID,
		QuestionText:    text,
		Type:            model.QuestionMCQ,
		DifficultyLevel: level,
		Options:         string(opts),
		CorrectAnswer:   answer,
	}
	require.NoError(t, f.db.Create(q).Error)
	return q
}

func (f *fixture) fib(t *testing.T, componentID uint, level int, text, answer string) *model.Question {
	t.Helper()
	q := &model.Question{
		ComponentID:     componentID,
		QuestionText:    text,
		Type:            model.QuestionFillInBlank,
		DifficultyLevel: level,
		CorrectAnswer:   answer,
	}
	require.NoError(t, f.db.Create(q).Error)
	return q
}

func (f *fixture) assessment(t *testing.T, componentID uint, level, passMark, numQuestions int) *model.Assessment {
	t.Helper()
	a := &model.Assessment{
		ComponentID:        componentID,
		Level:              level,
		PassMarkPercentage: passMark,
		NumberOfQuestions:  numQuestions,
	}
	require.NoError(t, f.db.Create(a).Error)
	return a
}

func (f *fixture) invite(t *testing.T, developerID, assessmentID uint) *model.AssessmentInvite {
	t.Helper()
	inv, err := f.assessments.CreateInvite(developerID, assessmentID)
	require.NoError(t, err)
	return inv
}

// correctAnswersFor builds a full submission answering every question with
// its stored correct answer.
func correctAnswersFor(questions []model.Question) []SubmitAnswer {
	answers := make([]SubmitAnswer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, SubmitAnswer{QuestionID: q.ID, Answer: q.CorrectAnswer})
	}
	return answers
}

func (f *fixture) levelFor(t *testing.T, developerID, componentID uint) int {
	t.Helper()
	var dl model.DeveloperLevel
	err := f.db.Where("developer_id = ? AND component_id = ?", developerID, componentID).First(&dl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0
	}
	require.NoError(t, err)
	return dl.CurrentLevel
}
