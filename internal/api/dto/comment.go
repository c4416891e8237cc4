package dto

import "time"

// CommentCreateDTO 创建评论请求。/comment 入口从 post 字段解析目标帖子，
// /posts/:post_id/comment 入口从路径解析
type CommentCreateDTO struct {
	Post    uint64 `json:"post"`
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentUpdateDTO 修改评论，未提供的字段保持不变
type CommentUpdateDTO struct {
	Content *string `json:"content" validate:"omitempty,min=1,max=1000"`
}

// CommentDTO 评论详情
type CommentDTO struct {
	ID        uint64    `json:"id"`
	PostID    uint64    `json:"post_id"`
	User      *UserDTO  `json:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
