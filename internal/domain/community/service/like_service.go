package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/repository"
	"threadboard/pkg/logger"
	"threadboard/pkg/metrics"

	"go.uber.org/zap"
)

const (
	opLike   = "like"
	opUnlike = "unlike"
)

// KarmaListener 积分变化后的回调，在事务提交之后同步调用
type KarmaListener interface {
	KarmaChanged(ctx context.Context, user string)
}

type LikeService interface {
	// Like 点赞，返回目标最新点赞数。重复点赞返回 ErrAlreadyLiked
	Like(ctx context.Context, kind model.TargetKind, targetID int64, user string) (int64, error)
	// Unlike 取消点赞，返回目标最新点赞数。未点赞返回 ErrNotLiked
	Unlike(ctx context.Context, kind model.TargetKind, targetID int64, user string) (int64, error)
	HasLiked(ctx context.Context, kind model.TargetKind, targetID int64, user string) (bool, error)
}

type likeService struct {
	repo      repository.LikeRepository
	listeners []KarmaListener
}

func NewLikeService(repo repository.LikeRepository, listeners ...KarmaListener) LikeService {
	return &likeService{repo: repo, listeners: listeners}
}

func validateLike(kind model.TargetKind, user string) error {
	if _, ok := kind.Likeable(); !ok {
		return fmt.Errorf("%w: unknown target kind %q", ErrInvalidArgument, kind)
	}
	if strings.TrimSpace(user) == "" {
		return validationError("user is required")
	}
	return nil
}

func (s *likeService) Like(ctx context.Context, kind model.TargetKind, targetID int64, user string) (int64, error) {
	if err := validateLike(kind, user); err != nil {
		return 0, err
	}

	res, err := s.repo.Like(ctx, &model.Like{User: user, TargetKind: kind, TargetID: targetID})
	if err != nil {
		return 0, s.fail(opLike, kind, targetID, user, err)
	}

	s.succeed(ctx, opLike, res)
	return res.LikeCount, nil
}

func (s *likeService) Unlike(ctx context.Context, kind model.TargetKind, targetID int64, user string) (int64, error) {
	if err := validateLike(kind, user); err != nil {
		return 0, err
	}

	res, err := s.repo.Unlike(ctx, model.Target{Kind: kind, ID: targetID}, user)
	if err != nil {
		return 0, s.fail(opUnlike, kind, targetID, user, err)
	}

	s.succeed(ctx, opUnlike, res)
	return res.LikeCount, nil
}

func (s *likeService) HasLiked(ctx context.Context, kind model.TargetKind, targetID int64, user string) (bool, error) {
	if err := validateLike(kind, user); err != nil {
		return false, err
	}
	liked, err := s.repo.Exists(ctx, model.Target{Kind: kind, ID: targetID}, user)
	if err != nil {
		return false, fmt.Errorf("check like on %s %d: %w", kind, targetID, err)
	}
	return liked, nil
}

func (s *likeService) succeed(ctx context.Context, op string, res *model.LikeResult) {
	metrics.GetGlobalCollector().RecordLikeOperation(string(res.Kind), op, "ok")
	for _, l := range s.listeners {
		l.KarmaChanged(ctx, res.Author)
	}
}

// fail 把仓库层错误翻译为业务错误，未知错误记日志
func (s *likeService) fail(op string, kind model.TargetKind, targetID int64, user string, err error) error {
	var (
		out    error
		result string
	)
	switch {
	case errors.Is(err, repository.ErrDuplicateLike):
		out, result = ErrAlreadyLiked, "already_liked"
	case errors.Is(err, repository.ErrLikeMissing):
		out, result = ErrNotLiked, "not_liked"
	case errors.Is(err, repository.ErrNotFound):
		out, result = ErrTargetNotFound, "not_found"
	default:
		out, result = fmt.Errorf("%s %s %d: %w", op, kind, targetID, err), "error"
		logger.Log.Error("like ledger transaction failed",
			zap.String("operation", op),
			zap.String("target", string(kind)),
			zap.Int64("target_id", targetID),
			zap.String("user", user),
			zap.Error(err),
		)
	}
	metrics.GetGlobalCollector().RecordLikeOperation(string(kind), op, result)
	return out
}
