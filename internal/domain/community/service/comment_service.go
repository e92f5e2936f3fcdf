package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/repository"
)

type CommentService interface {
	// CreateComment 创建评论，parentID 为空时为顶层评论
	CreateComment(ctx context.Context, postID int64, parentID *int64, author, content string) (*model.Comment, error)
	// LoadTree 一次查询取出帖子下全部评论并组装成树
	LoadTree(ctx context.Context, postID int64) ([]*model.CommentNode, error)
	GetComment(ctx context.Context, id int64) (*model.Comment, error)
	// ListComments 帖子下全部评论，按 path 排序（父评论在前）
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
}

type commentService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewCommentService(posts repository.PostRepository, comments repository.CommentRepository) CommentService {
	return &commentService{posts: posts, comments: comments}
}

func (s *commentService) CreateComment(ctx context.Context, postID int64, parentID *int64, author, content string) (*model.Comment, error) {
	if strings.TrimSpace(author) == "" {
		return nil, validationError("author is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationError("content is required")
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}

	var parent *model.Comment
	if parentID != nil {
		p, err := s.comments.GetByID(ctx, *parentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCommentNotFound
			}
			return nil, fmt.Errorf("get parent comment %d: %w", *parentID, err)
		}
		if p.PostID != postID {
			return nil, fmt.Errorf("%w: parent comment %d belongs to post %d", ErrInvalidArgument, p.ID, p.PostID)
		}
		parent = p
	}

	// ID 先分配，path 一次算好，单条 INSERT 落库
	comment := &model.Comment{PostID: postID, Author: author, Content: content}
	comment.EnsureID()
	comment.Place(parent)

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) LoadTree(ctx context.Context, postID int64) ([]*model.CommentNode, error) {
	comments, err := s.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildTree(comments), nil
}

func (s *commentService) GetComment(ctx context.Context, id int64) (*model.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment %d: %w", id, err)
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}
	return comments, nil
}
