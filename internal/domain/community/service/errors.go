package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation 入参校验失败（作者、内容、用户为空等）
	ErrValidation = errors.New("validation failed")
	// ErrInvalidArgument 参数组合非法，例如父评论不属于该帖子
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNotFound        = errors.New("not found")
	ErrPostNotFound    = fmt.Errorf("post %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrTargetNotFound  = fmt.Errorf("like target %w", ErrNotFound)

	ErrAlreadyLiked = errors.New("already liked")
	ErrNotLiked     = errors.New("not liked")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
