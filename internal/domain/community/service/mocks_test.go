package service

import (
	"context"
	"sync"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/repository"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, limit int) ([]model.Post, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

// MockCommentRepository is a mock of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

// MockLikeRepository is a mock of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Like(ctx context.Context, like *model.Like) (*model.LikeResult, error) {
	args := m.Called(ctx, like)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeResult), args.Error(1)
}

func (m *MockLikeRepository) Unlike(ctx context.Context, target model.Target, user string) (*model.LikeResult, error) {
	args := m.Called(ctx, target, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeResult), args.Error(1)
}

func (m *MockLikeRepository) Exists(ctx context.Context, target model.Target, user string) (bool, error) {
	args := m.Called(ctx, target, user)
	return args.Bool(0), args.Error(1)
}

// memLedger 内存版点赞账本，一把锁模拟数据库事务
type memLedger struct {
	mu      sync.Mutex
	authors map[model.Target]string
	counts  map[model.Target]int64
	likes   map[model.Target]map[string]bool
	karma   map[string]int
}

func newMemLedger() *memLedger {
	return &memLedger{
		authors: make(map[model.Target]string),
		counts:  make(map[model.Target]int64),
		likes:   make(map[model.Target]map[string]bool),
		karma:   make(map[string]int),
	}
}

func (l *memLedger) addTarget(kind model.TargetKind, id int64, author string) model.Target {
	t := model.Target{Kind: kind, ID: id}
	l.authors[t] = author
	l.likes[t] = make(map[string]bool)
	return t
}

func (l *memLedger) Like(_ context.Context, like *model.Like) (*model.LikeResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := model.Target{Kind: like.TargetKind, ID: like.TargetID}
	author, ok := l.authors[t]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if l.likes[t][like.User] {
		return nil, repository.ErrDuplicateLike
	}
	likeable, _ := t.Kind.Likeable()
	l.likes[t][like.User] = true
	l.counts[t]++
	l.karma[author] += likeable.KarmaPoints()
	return &model.LikeResult{Kind: t.Kind, TargetID: t.ID, Author: author, LikeCount: l.counts[t]}, nil
}

func (l *memLedger) Unlike(_ context.Context, t model.Target, user string) (*model.LikeResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	author, ok := l.authors[t]
	if !ok || !l.likes[t][user] {
		return nil, repository.ErrLikeMissing
	}
	likeable, _ := t.Kind.Likeable()
	delete(l.likes[t], user)
	l.counts[t]--
	l.karma[author] -= likeable.KarmaPoints()
	return &model.LikeResult{Kind: t.Kind, TargetID: t.ID, Author: author, LikeCount: l.counts[t]}, nil
}

func (l *memLedger) Exists(_ context.Context, t model.Target, user string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.likes[t][user], nil
}

// recordingListener 记录积分变化回调
type recordingListener struct {
	mu    sync.Mutex
	users []string
}

func (r *recordingListener) KarmaChanged(_ context.Context, user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
}
