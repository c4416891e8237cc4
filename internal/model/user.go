package model

import (
	"time"
)

type User struct {
	ID             uint64  `gorm:"primaryKey"`
	Email          string  `gorm:"type:varchar(254);not null;uniqueIndex:idx_email"`
	Username       *string `gorm:"type:varchar(150)"`
	Password       string  `gorm:"type:varchar(255);not null"`
	Bio            *string `gorm:"type:varchar(1000)"`
	ProfilePicture *string `gorm:"type:varchar(512);column:profile_picture"`
	IsActive       bool    `gorm:"type:tinyint(1);not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Posts    []Post    `gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
