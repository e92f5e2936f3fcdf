package handler

import (
	"errors"
	"net/http"
	"strconv"
	"threadboard/internal/domain/community/model"
	"threadboard/internal/domain/community/service"
	"threadboard/pkg/logger"
	"threadboard/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommunityHandler struct {
	posts    service.PostService
	comments service.CommentService
	likes    service.LikeService
}

func NewCommunityHandler(posts service.PostService, comments service.CommentService, likes service.LikeService) *CommunityHandler {
	return &CommunityHandler{posts: posts, comments: comments, likes: likes}
}

// CreatePostInput 发帖输入
type CreatePostInput struct {
	Author  string `json:"author" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreateCommentInput 评论输入，ID 以字符串传递
type CreateCommentInput struct {
	PostID   string `json:"post" binding:"required"`
	ParentID string `json:"parent"`
	Author   string `json:"author" binding:"required"`
	Content  string `json:"content" binding:"required"`
}

// LikeInput 点赞/取消点赞输入
type LikeInput struct {
	User string `json:"user" binding:"required"`
}

// LikeOutput 点赞结果
type LikeOutput struct {
	LikeCount int64 `json:"likeCount"`
}

// LikedOutput 是否已点赞
type LikedOutput struct {
	Liked bool `json:"liked"`
}

// CreatePost 发帖
// @Summary 发帖
// @Tags Community
// @Accept json
// @Produce json
// @Param input body CreatePostInput true "帖子内容"
// @Success 200 {object} model.Post
// @Router /api/posts [post]
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), input.Author, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, post)
}

// ListPosts 帖子列表
// @Summary 帖子列表（按时间倒序，含评论数）
// @Tags Community
// @Produce json
// @Success 200 {array} model.Post
// @Router /api/posts [get]
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost 帖子详情及评论树
// @Summary 帖子详情
// @Tags Community
// @Produce json
// @Param id path string true "帖子ID"
// @Success 200 {object} model.PostTree
// @Router /api/posts/{id} [get]
func (h *CommunityHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	tree, err := h.posts.GetPostWithTree(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, tree)
}

// CreateComment 评论
// @Summary 发表评论或回复
// @Tags Community
// @Accept json
// @Produce json
// @Param input body CreateCommentInput true "评论内容"
// @Success 200 {object} model.Comment
// @Router /api/comments [post]
func (h *CommunityHandler) CreateComment(c *gin.Context) {
	var input CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	postID, ok := parseID(c, input.PostID)
	if !ok {
		return
	}
	var parentID *int64
	if input.ParentID != "" {
		id, ok := parseID(c, input.ParentID)
		if !ok {
			return
		}
		parentID = &id
	}

	comment, err := h.comments.CreateComment(c.Request.Context(), postID, parentID, input.Author, input.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, comment)
}

// ListComments 帖子下的评论（扁平，父评论在前）
// @Summary 评论列表
// @Tags Community
// @Produce json
// @Param post query string true "帖子ID"
// @Success 200 {array} model.Comment
// @Router /api/comments [get]
func (h *CommunityHandler) ListComments(c *gin.Context) {
	postID, ok := parseID(c, c.Query("post"))
	if !ok {
		return
	}

	comments, err := h.comments.ListComments(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, comments)
}

// GetComment 评论详情
// @Summary 评论详情
// @Tags Community
// @Produce json
// @Param id path string true "评论ID"
// @Success 200 {object} model.Comment
// @Router /api/comments/{id} [get]
func (h *CommunityHandler) GetComment(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	comment, err := h.comments.GetComment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, comment)
}

// LikePost 点赞帖子
// @Summary 点赞帖子
// @Tags Like
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param input body LikeInput true "点赞用户"
// @Success 200 {object} LikeOutput
// @Failure 409 {object} response.Response
// @Router /api/posts/{id}/like [post]
func (h *CommunityHandler) LikePost(c *gin.Context) {
	h.toggle(c, model.TargetPost, true)
}

// UnlikePost 取消点赞帖子
// @Summary 取消点赞帖子
// @Tags Like
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param input body LikeInput true "点赞用户"
// @Success 200 {object} LikeOutput
// @Failure 409 {object} response.Response
// @Router /api/posts/{id}/unlike [post]
func (h *CommunityHandler) UnlikePost(c *gin.Context) {
	h.toggle(c, model.TargetPost, false)
}

// LikeComment 点赞评论
// @Summary 点赞评论
// @Tags Like
// @Accept json
// @Produce json
// @Param id path string true "评论ID"
// @Param input body LikeInput true "点赞用户"
// @Success 200 {object} LikeOutput
// @Failure 409 {object} response.Response
// @Router /api/comments/{id}/like [post]
func (h *CommunityHandler) LikeComment(c *gin.Context) {
	h.toggle(c, model.TargetComment, true)
}

// UnlikeComment 取消点赞评论
// @Summary 取消点赞评论
// @Tags Like
// @Accept json
// @Produce json
// @Param id path string true "评论ID"
// @Param input body LikeInput true "点赞用户"
// @Success 200 {object} LikeOutput
// @Failure 409 {object} response.Response
// @Router /api/comments/{id}/unlike [post]
func (h *CommunityHandler) UnlikeComment(c *gin.Context) {
	h.toggle(c, model.TargetComment, false)
}

// PostLiked 用户是否已点赞帖子
// @Summary 是否已点赞帖子
// @Tags Like
// @Produce json
// @Param id path string true "帖子ID"
// @Param user query string true "用户"
// @Success 200 {object} LikedOutput
// @Router /api/posts/{id}/liked [get]
func (h *CommunityHandler) PostLiked(c *gin.Context) {
	h.liked(c, model.TargetPost)
}

// CommentLiked 用户是否已点赞评论
// @Summary 是否已点赞评论
// @Tags Like
// @Produce json
// @Param id path string true "评论ID"
// @Param user query string true "用户"
// @Success 200 {object} LikedOutput
// @Router /api/comments/{id}/liked [get]
func (h *CommunityHandler) CommentLiked(c *gin.Context) {
	h.liked(c, model.TargetComment)
}

func (h *CommunityHandler) toggle(c *gin.Context, kind model.TargetKind, like bool) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	var input LikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	var (
		count int64
		err   error
	)
	if like {
		count, err = h.likes.Like(c.Request.Context(), kind, id, input.User)
	} else {
		count, err = h.likes.Unlike(c.Request.Context(), kind, id, input.User)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, LikeOutput{LikeCount: count})
}

func (h *CommunityHandler) liked(c *gin.Context, kind model.TargetKind) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	liked, err := h.likes.HasLiked(c.Request.Context(), kind, id, c.Query("user"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, LikedOutput{Liked: liked})
}

func parseID(c *gin.Context, raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid id: "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}

// writeError 业务错误映射为 HTTP 状态码和业务码
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.Error(c, http.StatusBadRequest, response.ErrValidation, err.Error())
	case errors.Is(err, service.ErrInvalidArgument):
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
	case errors.Is(err, service.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, response.ErrPostNotFound, err.Error())
	case errors.Is(err, service.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, response.ErrCommentNotFound, err.Error())
	case errors.Is(err, service.ErrTargetNotFound):
		response.Error(c, http.StatusNotFound, response.ErrTargetNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyLiked):
		response.Error(c, http.StatusConflict, response.ErrAlreadyLiked, err.Error())
	case errors.Is(err, service.ErrNotLiked):
		response.Error(c, http.StatusConflict, response.ErrNotLiked, err.Error())
	default:
		logger.Log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "internal server error")
	}
}
