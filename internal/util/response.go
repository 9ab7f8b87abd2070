package util

import (
	"errors"
	"net/http"

	"skillmatrix/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the uniform JSON envelope for every endpoint.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// RespondError maps the service error taxonomy onto HTTP status codes.
// Messages are surfaced verbatim; anything outside the taxonomy is treated
// as an internal failure.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDeveloperNotFound),
		errors.Is(err, ErrComponentNotFound),
		errors.Is(err, ErrAssessmentNotFound),
		errors.Is(err, ErrInviteNotFound),
		errors.Is(err, ErrAttemptNotFound),
		errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrAnswerNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInviteNotOwned),
		errors.Is(err, ErrAttemptNotOwned):
		Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrAttemptNotOpen):
		Error(c, http.StatusConflict, err.Error())
	default:
		LogInternalError(c, err)
	}
}
