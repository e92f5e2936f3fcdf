package handler

import (
	"errors"
	"net/http"
	"strconv"
	"threadboard/internal/domain/karma/service"
	"threadboard/pkg/logger"
	"threadboard/pkg/response"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LeaderboardHandler struct {
	service service.LeaderboardService
}

func NewLeaderboardHandler(s service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: s}
}

// UserKarmaOutput 用户窗口内净积分
type UserKarmaOutput struct {
	User  string `json:"user"`
	Karma int64  `json:"karma"`
}

// GetLeaderboard 积分排行榜
// @Summary 积分排行榜
// @Tags Karma
// @Produce json
// @Param hours query int false "统计窗口（小时），默认 24"
// @Param limit query int false "返回条数，默认 5，最大 100"
// @Success 200 {array} model.Entry
// @Router /api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	window, ok := queryHours(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	entries, err := h.service.Leaderboard(c.Request.Context(), window, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, entries)
}

// GetUserKarma 用户积分
// @Summary 用户在窗口内的净积分
// @Tags Karma
// @Produce json
// @Param user path string true "用户"
// @Param hours query int false "统计窗口（小时），默认 24"
// @Success 200 {object} UserKarmaOutput
// @Router /api/karma/{user} [get]
func (h *LeaderboardHandler) GetUserKarma(c *gin.Context) {
	window, ok := queryHours(c)
	if !ok {
		return
	}
	user := c.Param("user")

	karma, err := h.service.UserKarma(c.Request.Context(), user, window)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, UserKarmaOutput{User: user, Karma: karma})
}

// maxHours 窗口上限一年，超过会让 time.Duration 溢出
const maxHours = 24 * 365

func queryHours(c *gin.Context) (time.Duration, bool) {
	hours, ok := queryInt(c, "hours")
	if !ok {
		return 0, false
	}
	if hours > maxHours {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "hours must not exceed "+strconv.Itoa(maxHours))
		return 0, false
	}
	return time.Duration(hours) * time.Hour, true
}

// queryInt 缺省返回 0，由服务层取默认值
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid "+name+": "+strconv.Quote(raw))
		return 0, false
	}
	return v, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrInvalidLimit),
		errors.Is(err, service.ErrInvalidUser):
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
	default:
		logger.Log.Error("leaderboard request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, response.ErrLeaderboardUnavailable, "leaderboard unavailable")
	}
}
