package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/repository"
)

// DefaultFeedLimit 帖子列表默认条数
const DefaultFeedLimit = 50

type PostService interface {
	CreatePost(ctx context.Context, author, content string) (*model.Post, error)
	// GetPostWithTree 返回帖子及完整评论树，评论只查询一次
	GetPostWithTree(ctx context.Context, postID int64) (*model.PostTree, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type postService struct {
	posts     repository.PostRepository
	comments  CommentService
	feedLimit int
}

func NewPostService(posts repository.PostRepository, comments CommentService, feedLimit int) PostService {
	if feedLimit <= 0 {
		feedLimit = DefaultFeedLimit
	}
	return &postService{posts: posts, comments: comments, feedLimit: feedLimit}
}

func (s *postService) CreatePost(ctx context.Context, author, content string) (*model.Post, error) {
	if strings.TrimSpace(author) == "" {
		return nil, validationError("author is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationError("content is required")
	}

	post := &model.Post{Author: author, Content: content}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) GetPostWithTree(ctx context.Context, postID int64) (*model.PostTree, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.CommentCount = int64(len(comments))

	return &model.PostTree{Post: *post, Comments: BuildTree(comments)}, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx, s.feedLimit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *postService) getPost(ctx context.Context, postID int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	return post, nil
}
