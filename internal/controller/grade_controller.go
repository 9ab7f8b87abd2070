package controller

import (
	"skillmatrix/internal/service"
	"skillmatrix/internal/util"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	GradingService *service.GradingService
}

func NewGradeController(gradingService *service.GradingService) *GradeController {
	return &GradeController{GradingService: gradingService}
}

// @Summary Apply a manual verdict to an answer
// @Tags grading
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "{answerId, correct}"
// @Success 200 {object} util.Response
// @Router /assessments/grade [post]
func (c *GradeController) GradeAnswer(ctx *gin.Context) {
	var req struct {
		AnswerID uint  `json:"answerId" binding:"required"`
		Correct  *bool `json:"correct" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := c.GradingService.GradeAnswer(req.AnswerID, *req.Correct)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"id":       answer.ID,
		"correct":  answer.Correct,
		"reviewed": answer.Reviewed,
	})
}

// @Summary List attempts waiting for manual review
// @Tags grading
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /assessments/pending-review [get]
func (c *GradeController) ListPendingReview(ctx *gin.Context) {
	attempts, err := c.GradingService.ListPendingReview()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
