package util

import "errors"

var (
	ErrDeveloperNotFound  = errors.New("developer not found")
	ErrComponentNotFound  = errors.New("component not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrAnswerNotFound     = errors.New("answer not found")

	ErrInviteNotOwned  = errors.New("this invite is not for you")
	ErrAttemptNotOwned = errors.New("not authorized for this attempt")

	ErrAttemptNotOpen = errors.New("attempt is not in progress")
)
