package service

import (
	"errors"
	"time"

	"skillmatrix/internal/model"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/util"

	"gorm.io/gorm"
)

// UserService renders the per-developer read views over the engine's
// records: skill levels, attempt history and open invites.
type UserService struct {
	UserRepo       *repository.UserRepository
	LevelRepo      *repository.DeveloperLevelRepository
	AttemptRepo    *repository.AttemptRepository
	InviteRepo     *repository.InviteRepository
	AssessmentRepo *repository.AssessmentRepository
	ComponentRepo  *repository.ComponentRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	levelRepo *repository.DeveloperLevelRepository,
	attemptRepo *repository.AttemptRepository,
	inviteRepo *repository.InviteRepository,
	assessmentRepo *repository.AssessmentRepository,
	componentRepo *repository.ComponentRepository,
) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		LevelRepo:      levelRepo,
		AttemptRepo:    attemptRepo,
		InviteRepo:     inviteRepo,
		AssessmentRepo: assessmentRepo,
		ComponentRepo:  componentRepo,
	}
}

func (s *UserService) Users() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) User(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDeveloperNotFound
		}
		return nil, err
	}
	return user, nil
}

type SkillLevelView struct {
	ComponentID   uint       `json:"componentId"`
	ComponentName string     `json:"componentName"`
	TechStack     string     `json:"techStack"`
	CurrentLevel  int        `json:"currentLevel"`
	LastLevelUpAt *time.Time `json:"lastLevelUpAt,omitempty"`
}

func (s *UserService) Levels(developerID uint) ([]SkillLevelView, error) {
	levels, err := s.LevelRepo.FindByDeveloper(developerID)
	if err != nil {
		return nil, err
	}
	views := make([]SkillLevelView, 0, len(levels))
	for _, l := range levels {
		component, err := s.ComponentRepo.FindByID(l.ComponentID)
		if err != nil {
			return nil, err
		}
		views = append(views, SkillLevelView{
			ComponentID:   l.ComponentID,
			ComponentName: component.Name,
			TechStack:     component.TechStack,
			CurrentLevel:  l.CurrentLevel,
			LastLevelUpAt: l.LastLevelUpAt,
		})
	}
	return views, nil
}

type AttemptView struct {
	ID             uint                `json:"id"`
	AssessmentID   uint                `json:"assessmentId"`
	ComponentName  string              `json:"componentName"`
	TechStack      string              `json:"techStack"`
	Level          int                 `json:"level"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"totalQuestions"`
	Status         model.AttemptStatus `json:"status"`
	Passed         bool                `json:"passed"`
	StartedAt      time.Time           `json:"startedAt"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
}

func (s *UserService) Attempts(developerID uint) ([]AttemptView, error) {
	attempts, err := s.AttemptRepo.FindByDeveloper(developerID)
	if err != nil {
		return nil, err
	}
	views := make([]AttemptView, 0, len(attempts))
	for _, a := range attempts {
		assessment, err := s.AssessmentRepo.FindByID(a.AssessmentID)
		if err != nil {
			return nil, err
		}
		component, err := s.ComponentRepo.FindByID(assessment.ComponentID)
		if err != nil {
			return nil, err
		}
		views = append(views, AttemptView{
			ID:             a.ID,
			AssessmentID:   a.AssessmentID,
			ComponentName:  component.Name,
			TechStack:      component.TechStack,
			Level:          assessment.Level,
			Score:          a.Score,
			TotalQuestions: a.TotalQuestions,
			Status:         a.Status,
			Passed:         a.Passed,
			StartedAt:      a.StartedAt,
			CompletedAt:    a.CompletedAt,
		})
	}
	return views, nil
}

type InviteView struct {
	ID            uint               `json:"id"`
	AssessmentID  uint               `json:"assessmentId"`
	ComponentName string             `json:"componentName"`
	TechStack     string             `json:"techStack"`
	Level         int                `json:"level"`
	Status        model.InviteStatus `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// PendingInvites lists the invites a developer has not yet started.
func (s *UserService) PendingInvites(developerID uint) ([]InviteView, error) {
	invites, err := s.InviteRepo.FindByDeveloperAndStatus(developerID, model.InvitePending)
	if err != nil {
		return nil, err
	}
	views := make([]InviteView, 0, len(invites))
	for _, i := range invites {
		assessment, err := s.AssessmentRepo.FindByID(i.AssessmentID)
		if err != nil {
			return nil, err
		}
		component, err := s.ComponentRepo.FindByID(assessment.ComponentID)
		if err != nil {
			return nil, err
		}
		views = append(views, InviteView{
			ID:            i.ID,
			AssessmentID:  i.AssessmentID,
			ComponentName: component.Name,
			TechStack:     component.TechStack,
			Level:         assessment.Level,
			Status:        i.Status,
			CreatedAt:     i.CreatedAt,
		})
	}
	return views, nil
}
