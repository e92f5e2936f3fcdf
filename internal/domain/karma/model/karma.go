package model

import (
	"threadboard/pkg/snowflake"
	"time"

	"gorm.io/gorm"
)

// Kind 积分流水类型
type Kind string

const (
	KindPostLike    Kind = "post_like"
	KindCommentLike Kind = "comment_like"
)

// 积分值常量
const (
	PointsPostLike    = 5
	PointsCommentLike = 1
)

// Transaction 积分流水，只追加不修改，取消点赞记为一条负分流水
type Transaction struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	User       string    `gorm:"column:user_name;size:255;not null;index:idx_karma_user_created,priority:1" json:"user"`
	Points     int       `gorm:"not null" json:"points"`
	Kind       Kind      `gorm:"size:32;not null" json:"kind"`
	TargetKind *string   `gorm:"size:16" json:"targetKind,omitempty"`
	TargetID   *int64    `json:"targetId,string,omitempty"`
	CreatedAt  time.Time `gorm:"not null;index;index:idx_karma_user_created,priority:2" json:"createdAt"`
}

func (Transaction) TableName() string {
	return "karma_transactions"
}

// BeforeCreate 钩子：生成 ID
func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == 0 {
		t.ID = snowflake.GenID()
	}
	return
}

// Entry 排行榜条目
type Entry struct {
	User  string `db:"user_name" json:"user"`
	Karma int64  `db:"karma" json:"karma"`
	Rank  int    `db:"-" json:"rank"`
}
