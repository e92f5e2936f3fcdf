package model

import (
	karmaModel "threadboard/internal/domain/karma/model"
	baseModel "threadboard/pkg/model"
)

// Post 帖子模型
type Post struct {
	baseModel.BaseModel
	Author    string `gorm:"size:255;not null;index" json:"author"`
	Content   string `gorm:"type:text;not null" json:"content"`
	LikeCount int64  `gorm:"not null" json:"likeCount"` // 仅由点赞账本修改

	// 非数据库字段，列表查询时填充
	CommentCount int64 `gorm:"->" json:"commentCount"`
}

func (Post) TableName() string {
	return "posts"
}

func (Post) CounterTable() string {
	return Post{}.TableName()
}

func (Post) KarmaKind() karmaModel.Kind {
	return karmaModel.KindPostLike
}

func (Post) KarmaPoints() int {
	return karmaModel.PointsPostLike
}

// PostTree 帖子及其完整评论树
type PostTree struct {
	Post
	Comments []*CommentNode `json:"comments"`
}
