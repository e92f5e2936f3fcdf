package repository

import (
	"context"
	"threadboard/internal/domain/community/model"

	"gorm.io/gorm"
)

// CommentRepository 评论仓库
type CommentRepository interface {
	// Create 单条 INSERT 写入完整的评论行，ID/path/depth 必须已计算
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	// ListByPost 一次范围扫描取出帖子下全部评论，按 path 升序
	ListByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("path ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
