package repository

import (
	"Plume/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LikeRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error)
	GetLikesByPostID(ctx context.Context, postID uint64) ([]*model.Like, error)
	CountByPostID(ctx context.Context, postID uint64) (int64, error)
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db}
}

func (s *LikeRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

func (s *LikeRepoImpl) GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	var like model.Like
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (s *LikeRepoImpl) GetLikesByPostID(ctx context.Context, postID uint64) ([]*model.Like, error) {
	var likes []*model.Like
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&likes).Error
	return likes, err
}

func (s *LikeRepoImpl) CountByPostID(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
