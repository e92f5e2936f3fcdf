package model

import (
	"threadboard/pkg/snowflake"
	"time"

	"gorm.io/gorm"
)

// BaseModel 基础模型，替代 gorm.Model，使用应用侧预分配的 snowflake ID 作为主键
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement:false" json:"id,string"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate 钩子：未预分配时生成 ID
func (b *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == 0 {
		b.ID = snowflake.GenID()
	}
	return
}

// EnsureID 在写入前分配 ID，需要在插入前就知道 ID 的场景使用
func (b *BaseModel) EnsureID() int64 {
	if b.ID == 0 {
		b.ID = snowflake.GenID()
	}
	return b.ID
}
