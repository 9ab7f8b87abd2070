package controller

import (
	"skillmatrix/internal/service"
	"skillmatrix/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary List users
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /users [get]
func (c *UserController) Users(ctx *gin.Context) {
	users, err := c.UserService.Users()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// @Summary Get one user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId} [get]
func (c *UserController) User(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	user, err := c.UserService.User(userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Skill levels of a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/levels [get]
func (c *UserController) Levels(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	levels, err := c.UserService.Levels(userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, levels)
}

// @Summary Attempt history of a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/attempts [get]
func (c *UserController) Attempts(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	attempts, err := c.UserService.Attempts(userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// @Summary Pending invites of a user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "user id"
// @Success 200 {object} util.Response
// @Router /users/{userId}/invites [get]
func (c *UserController) Invites(ctx *gin.Context) {
	userID, ok := pathID(ctx, "userId")
	if !ok {
		return
	}
	invites, err := c.UserService.PendingInvites(userID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, invites)
}
