package controller

import (
	"strconv"

	"skillmatrix/internal/model"
	"skillmatrix/internal/service"
	"skillmatrix/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type questionView struct {
	ID              uint               `json:"id"`
	QuestionText    string             `json:"questionText"`
	Type            model.QuestionType `json:"type"`
	DifficultyLevel int                `json:"difficultyLevel"`
	Options         []string           `json:"options,omitempty"`
}

// questionViews strips canonical answers before anything leaves the server.
func questionViews(questions []model.Question) []questionView {
	views := make([]questionView, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		views = append(views, questionView{
			ID:              q.ID,
			QuestionText:    q.QuestionText,
			Type:            q.Type,
			DifficultyLevel: q.DifficultyLevel,
			Options:         q.OptionList(),
		})
	}
	return views
}

// @Summary Invite a developer to an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{developerId, assessmentId}"
// @Success 201 {object} util.Response
// @Router /assessments/invite [post]
func (c *AssessmentController) CreateInvite(ctx *gin.Context) {
	var req struct {
		DeveloperID  uint `json:"developerId" binding:"required"`
		AssessmentID uint `json:"assessmentId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	invite, err := c.AssessmentService.CreateInvite(req.DeveloperID, req.AssessmentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"id":     invite.ID,
		"status": invite.Status,
	})
}

// @Summary Start an attempt from an invite
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param inviteId path int true "invite id"
// @Success 200 {object} util.Response
// @Router /assessments/start/{inviteId} [post]
func (c *AssessmentController) StartAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	inviteID, err := strconv.Atoi(ctx.Param("inviteId"))
	if err != nil {
		util.BadRequest(ctx, "invalid invite id")
		return
	}

	attempt, questions, err := c.AssessmentService.StartAttempt(uint(inviteID), user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"attemptId":      attempt.ID,
		"totalQuestions": attempt.TotalQuestions,
		"status":         attempt.Status,
		"questions":      questionViews(questions),
	})
}

// @Summary Fetch the question set for an open attempt
// @Tags assessments
// @Produce json
// @Security ApiKeyAuth
// @Param attemptId path int true "attempt id"
// @Success 200 {object} util.Response
// @Router /assessments/attempts/{attemptId}/questions [get]
func (c *AssessmentController) AttemptQuestions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}

	questions, err := c.AssessmentService.AttemptQuestions(uint(attemptID), user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, questionViews(questions))
}

// @Summary Submit answers for an attempt
// @Tags assessments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param attemptId path int true "attempt id"
// @Param body body object true "[{questionId, answer}]"
// @Success 200 {object} util.Response
// @Router /assessments/submit/{attemptId} [post]
func (c *AssessmentController) SubmitAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	attemptID, err := strconv.Atoi(ctx.Param("attemptId"))
	if err != nil {
		util.BadRequest(ctx, "invalid attempt id")
		return
	}
	var answers []service.SubmitAnswer
	if err := ctx.ShouldBindJSON(&answers); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AssessmentService.SubmitAttempt(uint(attemptID), user.UserID, answers)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"id":             attempt.ID,
		"score":          attempt.Score,
		"totalQuestions": attempt.TotalQuestions,
		"passed":         attempt.Passed,
		"status":         attempt.Status,
	})
}
