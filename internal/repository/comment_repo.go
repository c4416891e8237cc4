package repository

import (
	"Plume/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	GetAllComments(ctx context.Context) ([]*model.Comment, error)
	UpdateComment(ctx context.Context, id uint64, fields map[string]interface{}) error
	DeleteComment(ctx context.Context, id uint64) error
	CountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetCommentByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID 默认按创建时间倒序
func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) GetAllComments(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) UpdateComment(ctx context.Context, id uint64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (s *CommentRepoImpl) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
