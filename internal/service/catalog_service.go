package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"
	"skillmatrix/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const questionCacheTTL = 10 * time.Minute

// CatalogService serves the read-only hierarchy Team -> Project ->
// Component -> Question. Component question lists are cached in Redis; the
// catalog is effectively immutable from the engine's point of view so a
// short TTL is enough.
type CatalogService struct {
	TeamRepo       *repository.TeamRepository
	ProjectRepo    *repository.ProjectRepository
	ComponentRepo  *repository.ComponentRepository
	QuestionRepo   *repository.QuestionRepository
	AssessmentRepo *repository.AssessmentRepository
	Redis          *redis.Client
}

func NewCatalogService(
	teamRepo *repository.TeamRepository,
	projectRepo *repository.ProjectRepository,
	componentRepo *repository.ComponentRepository,
	questionRepo *repository.QuestionRepository,
	assessmentRepo *repository.AssessmentRepository,
	rdb *redis.Client,
) *CatalogService {
	return &CatalogService{
		TeamRepo:       teamRepo,
		ProjectRepo:    projectRepo,
		ComponentRepo:  componentRepo,
		QuestionRepo:   questionRepo,
		AssessmentRepo: assessmentRepo,
		Redis:          rdb,
	}
}

type TeamView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProjectCount int64  `json:"projectCount"`
}

func (s *CatalogService) Teams() ([]TeamView, error) {
	teams, err := s.TeamRepo.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		count, err := s.TeamRepo.CountProjects(t.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, TeamView{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			ProjectCount: count,
		})
	}
	return views, nil
}

func (s *CatalogService) ProjectsByTeam(teamID uint) ([]model.Project, error) {
	return s.ProjectRepo.FindByTeamID(teamID)
}

func (s *CatalogService) ComponentsByProject(projectID uint) ([]model.Component, error) {
	return s.ComponentRepo.FindByProjectID(projectID)
}

// QuestionsByComponent returns the full question bank of a component,
// canonical answers included; the route is restricted to admins.
func (s *CatalogService) QuestionsByComponent(componentID uint) ([]model.Question, error) {
	cacheKey := fmt.Sprintf("catalog:questions:%d", componentID)
	ctx := context.Background()

	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached []model.Question
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached, nil
			}
		}
	}

	questions, err := s.QuestionRepo.FindByComponentID(componentID)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(questions); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, data, questionCacheTTL).Err(); err != nil {
				logger.Log.Warn("question cache write failed", zap.Error(err))
			}
		}
	}
	return questions, nil
}

type AssessmentView struct {
	ID                 uint   `json:"id"`
	ComponentID        uint   `json:"componentId"`
	ComponentName      string `json:"componentName"`
	TechStack          string `json:"techStack"`
	Level              int    `json:"level"`
	PassMarkPercentage int    `json:"passMarkPercentage"`
	NumberOfQuestions  int    `json:"numberOfQuestions"`
}

func (s *CatalogService) Assessments() ([]AssessmentView, error) {
	assessments, err := s.AssessmentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	views := make([]AssessmentView, 0, len(assessments))
	for _, a := range assessments {
		component, err := s.ComponentRepo.FindByID(a.ComponentID)
		if err != nil {
			return nil, err
		}
		views = append(views, AssessmentView{
			ID:                 a.ID,
			ComponentID:        a.ComponentID,
			ComponentName:      component.Name,
			TechStack:          component.TechStack,
			Level:              a.Level,
			PassMarkPercentage: a.PassMarkPercentage,
			NumberOfQuestions:  a.NumberOfQuestions,
		})
	}
	return views, nil
}

// CreateAssessment applies lookup-or-create so a (component, level) pair
// never gets a second assessment.
func (s *CatalogService) CreateAssessment(componentID uint, level, passMark, numQuestions int, createdBy uint) (*model.Assessment, error) {
	if _, err := s.ComponentRepo.FindByID(componentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrComponentNotFound
		}
		return nil, err
	}
	by := createdBy
	return s.AssessmentRepo.FindOrCreate(componentID, level, passMark, numQuestions, &by)
}
