package model

import (
	karmaModel "threadboard/internal/domain/karma/model"
	"threadboard/pkg/snowflake"
	"time"

	"gorm.io/gorm"
)

// TargetKind 点赞目标类型
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// Likeable 可点赞目标的能力：计数器所在表、作者获得的积分类型和分值
type Likeable interface {
	CounterTable() string
	KarmaKind() karmaModel.Kind
	KarmaPoints() int
}

// Likeable 返回目标类型对应的能力，未知类型返回 false
func (k TargetKind) Likeable() (Likeable, bool) {
	switch k {
	case TargetPost:
		return Post{}, true
	case TargetComment:
		return Comment{}, true
	}
	return nil, false
}

// Target 点赞目标
type Target struct {
	Kind TargetKind
	ID   int64
}

// Like 点赞记录，(user, target_kind, target_id) 唯一
type Like struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	User       string     `gorm:"column:user_name;size:255;not null;uniqueIndex:idx_likes_user_target,priority:1" json:"user"`
	TargetKind TargetKind `gorm:"size:16;not null;uniqueIndex:idx_likes_user_target,priority:2;index:idx_likes_target,priority:1" json:"targetKind"`
	TargetID   int64      `gorm:"not null;uniqueIndex:idx_likes_user_target,priority:3;index:idx_likes_target,priority:2" json:"targetId,string"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

// BeforeCreate 钩子：生成 ID
func (l *Like) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == 0 {
		l.ID = snowflake.GenID()
	}
	return
}

// LikeResult 点赞/取消点赞后的目标状态
type LikeResult struct {
	Kind      TargetKind `json:"kind"`
	TargetID  int64      `json:"targetId,string"`
	Author    string     `json:"author"`
	LikeCount int64      `json:"likeCount"`
}
