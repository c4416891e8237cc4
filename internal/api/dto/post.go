package dto

import "time"

// PostBaseDTO 帖子 - 新增
type PostBaseDTO struct {
	Title   string  `json:"title" binding:"required,max=225"`
	Image   *string `json:"image" validate:"omitempty,max=512"`
	Caption *string `json:"caption"`
}

// PostUpdateDTO 帖子 - 修改，未提供的字段保持不变
type PostUpdateDTO struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=225"`
	Image   *string `json:"image" validate:"omitempty,max=512"`
	Caption *string `json:"caption"`
}

// PostDTO 帖子详情
type PostDTO struct {
	ID            uint64        `json:"id"`
	Author        *UserDTO      `json:"author"`
	Title         string        `json:"title"`
	Image         *string       `json:"image"`
	Caption       *string       `json:"caption"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	LikesCount    int64         `json:"likes_count"`
	CommentsCount int64         `json:"comments_count"`
	Comments      []*CommentDTO `json:"comments"`
	IsLiked       bool          `json:"is_liked"`
}

// ToggleLikeDTO 点赞切换结果
type ToggleLikeDTO struct {
	Message    string `json:"message"`
	IsLiked    bool   `json:"is_liked"`
	LikesCount int64  `json:"likes_count"`
}

// LikeDTO 点赞详情
type LikeDTO struct {
	ID        uint64    `json:"id"`
	User      *UserDTO  `json:"user"`
	Post      uint64    `json:"post"`
	CreatedAt time.Time `json:"created_at"`
}
