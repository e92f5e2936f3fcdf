package model

import (
	"fmt"
	karmaModel "threadboard/internal/domain/karma/model"
	baseModel "threadboard/pkg/model"
)

// PathSeparator 物化路径分隔符，字节序小于任何数字
const PathSeparator = "/"

// pathSegmentWidth int64 最大值的十进制位数，定宽补零保证字典序等于数值序
const pathSegmentWidth = 19

// Comment 评论模型，path/depth 创建时计算，之后不再修改
type Comment struct {
	baseModel.BaseModel
	PostID    int64  `gorm:"not null;index:idx_comments_post_path,priority:1" json:"postId,string"`
	ParentID  *int64 `gorm:"index" json:"parentId,string,omitempty"`
	Author    string `gorm:"size:255;not null;index" json:"author"`
	Content   string `gorm:"type:text;not null" json:"content"`
	LikeCount int64  `gorm:"not null" json:"likeCount"`
	Depth     int    `gorm:"not null" json:"depth"`
	Path      string `gorm:"type:text;not null;index:idx_comments_post_path,priority:2" json:"path"`
}

func (Comment) TableName() string {
	return "comments"
}

func (Comment) CounterTable() string {
	return Comment{}.TableName()
}

func (Comment) KarmaKind() karmaModel.Kind {
	return karmaModel.KindCommentLike
}

func (Comment) KarmaPoints() int {
	return karmaModel.PointsCommentLike
}

// PathSegment 将 ID 编码为定宽路径段
func PathSegment(id int64) string {
	return fmt.Sprintf("%0*d", pathSegmentWidth, id)
}

// Place 根据父评论计算 path 和 depth，调用前 ID 必须已分配
func (c *Comment) Place(parent *Comment) {
	if parent == nil {
		c.ParentID = nil
		c.Depth = 0
		c.Path = PathSegment(c.ID)
		return
	}
	parentID := parent.ID
	c.ParentID = &parentID
	c.Depth = parent.Depth + 1
	c.Path = parent.Path + PathSeparator + PathSegment(c.ID)
}

// CommentNode 评论树节点
type CommentNode struct {
	Comment
	Replies []*CommentNode `json:"replies"`
}
