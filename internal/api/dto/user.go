package dto

import "time"

// RegisterDTO 注册
type RegisterDTO struct {
	Username        *string `json:"username"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required"`
	PasswordConfirm string  `json:"password_confirm" binding:"required"`
	Bio             *string `json:"bio"`
	ProfilePicture  *string `json:"profile_picture"`
}

// LoginDTO 登录凭证
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshDTO 刷新令牌请求
type RefreshDTO struct {
	Refresh string `json:"refresh" binding:"required"`
}

// LoginResultDTO 登录成功返回的身份与令牌对
type LoginResultDTO struct {
	User     string  `json:"user"`
	Username *string `json:"username,omitempty"`
	Access   string  `json:"access"`
	Refresh  string  `json:"refresh"`
}

// UserDTO 用户资料
type UserDTO struct {
	ID             uint64    `json:"id"`
	Username       *string   `json:"username"`
	Email          string    `json:"email"`
	Bio            *string   `json:"bio"`
	ProfilePicture *string   `json:"profile_picture"`
	DateJoined     time.Time `json:"date_joined"`
	PostsCount     int64     `json:"posts_count"`
}

// ProfileUpdateDTO 资料更新，未提供的字段保持不变
type ProfileUpdateDTO struct {
	Username       *string `json:"username" validate:"omitempty,max=150"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Bio            *string `json:"bio" validate:"omitempty,max=1000"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=512"`
}
