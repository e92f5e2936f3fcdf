package service

import (
	"context"
	"errors"
	"testing"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPost(id int64, author string) *model.Post {
	p := &model.Post{Author: author, Content: "hello"}
	p.ID = id
	return p
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := NewPostService(posts, NewCommentService(posts, new(MockCommentRepository)), 0)

		posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).Return(nil)

		post, err := svc.CreatePost(ctx, "alice", "hello")
		require.NoError(t, err)
		assert.Equal(t, "alice", post.Author)
		assert.Equal(t, int64(0), post.LikeCount)
		posts.AssertExpectations(t)
	})

	t.Run("blank author or content", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := NewPostService(posts, nil, 0)

		_, err := svc.CreatePost(ctx, " ", "hello")
		assert.ErrorIs(t, err, ErrValidation)
		_, err = svc.CreatePost(ctx, "alice", "")
		assert.ErrorIs(t, err, ErrValidation)
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		posts := new(MockPostRepository)
		svc := NewPostService(posts, nil, 0)
		boom := errors.New("connection reset")

		posts.On("Create", ctx, mock.Anything).Return(boom)

		_, err := svc.CreatePost(ctx, "alice", "hello")
		assert.ErrorIs(t, err, boom)
	})
}

func TestGetPostWithTree(t *testing.T) {
	ctx := context.Background()

	t.Run("post with nested comments", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := NewPostService(posts, NewCommentService(posts, comments), 0)

		root := newComment(20, nil)
		reply := newComment(21, &root)
		posts.On("GetByID", ctx, int64(1)).Return(createTestPost(1, "alice"), nil)
		comments.On("ListByPost", ctx, int64(1)).Return([]model.Comment{root, reply}, nil).Once()

		tree, err := svc.GetPostWithTree(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), tree.CommentCount)
		require.Len(t, tree.Comments, 1)
		require.Len(t, tree.Comments[0].Replies, 1)
		assert.Equal(t, int64(21), tree.Comments[0].Replies[0].ID)
		comments.AssertNumberOfCalls(t, "ListByPost", 1)
	})

	t.Run("post without comments has empty tree", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := NewPostService(posts, NewCommentService(posts, comments), 0)

		posts.On("GetByID", ctx, int64(2)).Return(createTestPost(2, "bob"), nil)
		comments.On("ListByPost", ctx, int64(2)).Return([]model.Comment{}, nil)

		tree, err := svc.GetPostWithTree(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, tree.Comments)
		assert.Empty(t, tree.Comments)
	})

	t.Run("unknown post", func(t *testing.T) {
		posts := new(MockPostRepository)
		comments := new(MockCommentRepository)
		svc := NewPostService(posts, NewCommentService(posts, comments), 0)

		posts.On("GetByID", ctx, int64(404)).Return(nil, repository.ErrNotFound)

		_, err := svc.GetPostWithTree(ctx, 404)
		assert.ErrorIs(t, err, ErrPostNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
		comments.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	posts := new(MockPostRepository)
	svc := NewPostService(posts, nil, 20)

	posts.On("List", ctx, 20).Return([]model.Post{*createTestPost(2, "bob"), *createTestPost(1, "alice")}, nil)

	list, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	posts.AssertExpectations(t)
}
