package model

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Title     string    `gorm:"type:varchar(225);not null" json:"title"`
	Image     *string   `gorm:"type:varchar(512)" json:"image"`
	Caption   *string   `gorm:"type:text" json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 关联关系
	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "posts"
}

// OwnerID 帖子归属于其作者
func (p *Post) OwnerID() uint64 {
	return p.AuthorID
}
