package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"threadboard/internal/domain/karma/model"
	"threadboard/internal/domain/karma/service"
	"threadboard/pkg/response"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLeaderboardService struct{ mock.Mock }

func (m *MockLeaderboardService) Leaderboard(ctx context.Context, window time.Duration, limit int) ([]model.Entry, error) {
	args := m.Called(window, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockLeaderboardService) UserKarma(ctx context.Context, user string, window time.Duration) (int64, error) {
	args := m.Called(user, window)
	return args.Get(0).(int64), args.Error(1)
}

func setupRouter(svc service.LeaderboardService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLeaderboardHandler(svc)
	r.GET("/api/leaderboard", h.GetLeaderboard)
	r.GET("/api/karma/:user", h.GetUserKarma)
	return r
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, response.Response) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGetLeaderboard(t *testing.T) {
	svc := new(MockLeaderboardService)
	r := setupRouter(svc)
	svc.On("Leaderboard", time.Duration(0), 0).Return([]model.Entry{{User: "alice", Karma: 10, Rank: 1}}, nil)
	svc.On("Leaderboard", 48*time.Hour, 10).Return([]model.Entry{}, nil)

	w, resp := get(r, "/api/leaderboard")
	require.Equal(t, http.StatusOK, w.Code)
	entries := resp.Data.([]interface{})
	require.Len(t, entries, 1)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "alice", first["user"])
	assert.Equal(t, float64(10), first["karma"])
	assert.Equal(t, float64(1), first["rank"])

	w, _ = get(r, "/api/leaderboard?hours=48&limit=10")
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestGetLeaderboardBadInput(t *testing.T) {
	svc := new(MockLeaderboardService)
	r := setupRouter(svc)
	svc.On("Leaderboard", -time.Hour, 0).Return(nil, service.ErrInvalidWindow)

	w, resp := get(r, "/api/leaderboard?hours=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidParam, resp.Code)

	w, _ = get(r, "/api/leaderboard?hours=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = get(r, "/api/leaderboard?hours=5124096")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.ErrInvalidParam, resp.Code)

	w, _ = get(r, "/api/karma/alice?hours=8761")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UserKarma", mock.Anything, mock.Anything)
}

func TestGetLeaderboardFailure(t *testing.T) {
	svc := new(MockLeaderboardService)
	r := setupRouter(svc)
	svc.On("Leaderboard", time.Duration(0), 0).Return(nil, errors.New("timeout"))

	w, resp := get(r, "/api/leaderboard")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, response.ErrLeaderboardUnavailable, resp.Code)
}

func TestGetUserKarma(t *testing.T) {
	svc := new(MockLeaderboardService)
	r := setupRouter(svc)
	svc.On("UserKarma", "alice", 2*time.Hour).Return(int64(6), nil)

	w, resp := get(r, "/api/karma/alice?hours=2")
	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "alice", data["user"])
	assert.Equal(t, float64(6), data["karma"])
}
