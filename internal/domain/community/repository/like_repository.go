package repository

import (
	"context"
	"errors"
	"fmt"
	"threadboard/internal/domain/community/model"
	karmaModel "threadboard/internal/domain/karma/model"
	karmaRepo "threadboard/internal/domain/karma/repository"

	"gorm.io/gorm"
)

// LikeRepository 点赞账本，点赞记录、计数器、积分流水在同一事务内变更
type LikeRepository interface {
	// Like 插入点赞记录、计数器 +1、给作者追加积分流水。
	// 重复点赞返回 ErrDuplicateLike，目标不存在返回 ErrNotFound，均不产生任何变更
	Like(ctx context.Context, like *model.Like) (*model.LikeResult, error)
	// Unlike 删除点赞记录、计数器 -1、追加负分流水。
	// 点赞记录不存在返回 ErrLikeMissing
	Unlike(ctx context.Context, target model.Target, user string) (*model.LikeResult, error)
	Exists(ctx context.Context, target model.Target, user string) (bool, error)
}

type likeRepository struct {
	db    *gorm.DB
	karma karmaRepo.Writer
}

func NewLikeRepository(db *gorm.DB, karma karmaRepo.Writer) LikeRepository {
	return &likeRepository{db: db, karma: karma}
}

func likeableOf(kind model.TargetKind) (model.Likeable, error) {
	l, ok := kind.Likeable()
	if !ok {
		return nil, fmt.Errorf("unknown like target kind %q", kind)
	}
	return l, nil
}

func (r *likeRepository) Like(ctx context.Context, like *model.Like) (*model.LikeResult, error) {
	likeable, err := likeableOf(like.TargetKind)
	if err != nil {
		return nil, err
	}
	target := model.Target{Kind: like.TargetKind, ID: like.TargetID}

	var result *model.LikeResult
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 插入点赞记录，由唯一索引兜底并发重复点赞
		if err := tx.Create(like).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateLike
			}
			return err
		}

		// 2. 计数器原子 +1，同时确认目标存在
		res, err := adjustCounter(tx, likeable, target, 1)
		if err != nil {
			return err
		}

		// 3. 给作者记积分
		if err := r.appendKarma(tx, likeable, res, likeable.KarmaPoints()); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *likeRepository) Unlike(ctx context.Context, target model.Target, user string) (*model.LikeResult, error) {
	likeable, err := likeableOf(target.Kind)
	if err != nil {
		return nil, err
	}

	var result *model.LikeResult
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Where("user_name = ? AND target_kind = ? AND target_id = ?", user, target.Kind, target.ID).
			Delete(&model.Like{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return ErrLikeMissing
		}

		res, err := adjustCounter(tx, likeable, target, -1)
		if err != nil {
			return err
		}

		// 流水不删除，追加一条负分抵消
		if err := r.appendKarma(tx, likeable, res, -likeable.KarmaPoints()); err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *likeRepository) Exists(ctx context.Context, target model.Target, user string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_name = ? AND target_kind = ? AND target_id = ?", user, target.Kind, target.ID).
		Count(&count).Error
	return count > 0, err
}

// adjustCounter 以 like_count = like_count + delta 原子更新计数器，并在同一事务内读回作者和最新计数。
// 递减时计数器不会低于 0，目标是否存在由随后的读取判断
func adjustCounter(tx *gorm.DB, l model.Likeable, target model.Target, delta int) (*model.LikeResult, error) {
	upd := tx.Table(l.CounterTable()).Where("id = ?", target.ID)
	if delta < 0 {
		upd = upd.Where("like_count > 0")
	}
	upd = upd.UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
	if upd.Error != nil {
		return nil, upd.Error
	}
	if upd.RowsAffected == 0 && delta > 0 {
		return nil, ErrNotFound
	}

	var row struct {
		Author    string
		LikeCount int64
	}
	if err := tx.Table(l.CounterTable()).
		Select("author", "like_count").
		Where("id = ?", target.ID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.LikeResult{
		Kind:      target.Kind,
		TargetID:  target.ID,
		Author:    row.Author,
		LikeCount: row.LikeCount,
	}, nil
}

func (r *likeRepository) appendKarma(tx *gorm.DB, l model.Likeable, res *model.LikeResult, points int) error {
	kind := string(res.Kind)
	targetID := res.TargetID
	return r.karma.Append(tx, &karmaModel.Transaction{
		User:       res.Author,
		Points:     points,
		Kind:       l.KarmaKind(),
		TargetKind: &kind,
		TargetID:   &targetID,
	})
}
