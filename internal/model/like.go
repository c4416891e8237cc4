package model

import (
	"time"
)

type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_post" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_user_post;index:idx_post_id" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Like) TableName() string {
	return "likes"
}

// OwnerID 点赞归属于发起的用户
func (l *Like) OwnerID() uint64 {
	return l.UserID
}
