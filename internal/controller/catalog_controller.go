package controller

import (
	"strconv"

	"skillmatrix/internal/service"
	"skillmatrix/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// @Summary List teams
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teams [get]
func (c *CatalogController) Teams(ctx *gin.Context) {
	teams, err := c.CatalogService.Teams()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, teams)
}

// @Summary List projects of a team
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param teamId path int true "team id"
// @Success 200 {object} util.Response
// @Router /teams/{teamId}/projects [get]
func (c *CatalogController) Projects(ctx *gin.Context) {
	teamID, ok := pathID(ctx, "teamId")
	if !ok {
		return
	}
	projects, err := c.CatalogService.ProjectsByTeam(teamID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, projects)
}

// @Summary List components of a project
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param projectId path int true "project id"
// @Success 200 {object} util.Response
// @Router /projects/{projectId}/components [get]
func (c *CatalogController) Components(ctx *gin.Context) {
	projectID, ok := pathID(ctx, "projectId")
	if !ok {
		return
	}
	components, err := c.CatalogService.ComponentsByProject(projectID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, components)
}

// @Summary List the question bank of a component (answers included)
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Param componentId path int true "component id"
// @Success 200 {object} util.Response
// @Router /components/{componentId}/questions [get]
func (c *CatalogController) Questions(ctx *gin.Context) {
	componentID, ok := pathID(ctx, "componentId")
	if !ok {
		return
	}
	questions, err := c.CatalogService.QuestionsByComponent(componentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	// Admin route: expose the canonical answer alongside the model fields.
	views := make([]gin.H, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		views = append(views, gin.H{
			"id":              q.ID,
			"questionText":    q.QuestionText,
			"type":            q.Type,
			"difficultyLevel": q.DifficultyLevel,
			"options":         q.OptionList(),
			"correctAnswer":   q.CorrectAnswer,
			"componentId":     q.ComponentID,
		})
	}
	util.Success(ctx, views)
}

// @Summary List assessments
// @Tags catalog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /assessments [get]
func (c *CatalogController) Assessments(ctx *gin.Context) {
	assessments, err := c.CatalogService.Assessments()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, assessments)
}

// @Summary Create an assessment for a (component, level) pair
// @Tags catalog
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{componentId, level, passMarkPercentage, numberOfQuestions}"
// @Success 201 {object} util.Response
// @Router /assessments [post]
func (c *CatalogController) CreateAssessment(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	var req struct {
		ComponentID        uint `json:"componentId" binding:"required"`
		Level              int  `json:"level" binding:"required,min=1"`
		PassMarkPercentage int  `json:"passMarkPercentage" binding:"min=0,max=100"`
		NumberOfQuestions  int  `json:"numberOfQuestions" binding:"min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.CatalogService.CreateAssessment(
		req.ComponentID, req.Level, req.PassMarkPercentage, req.NumberOfQuestions, user.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, assessment)
}
