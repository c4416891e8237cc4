package service

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type PostActionService interface {
	ToggleLike(ctx context.Context, userID, postID uint64) (*dto.ToggleLikeDTO, error)
	GetLikes(ctx context.Context, postID uint64) ([]*dto.LikeDTO, error)
}

type postActionServiceImpl struct {
	likeRepo repository.LikeRepo
	postRepo repository.PostRepo
}

func NewPostActionService(likeRepo repository.LikeRepo, postRepo repository.PostRepo) PostActionService {
	return &postActionServiceImpl{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// ToggleLike 点赞切换：不存在则创建返回已点赞，存在则删除返回未点赞。
// 并发下的重复创建交由 (user_id, post_id) 唯一约束兜底，
// 命中唯一约束视为已点赞，重复调用不会报错。
func (s *postActionServiceImpl) ToggleLike(ctx context.Context, userID, postID uint64) (*dto.ToggleLikeDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	existing, err := s.likeRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	var isLiked bool
	var message string
	if existing == nil {
		err = s.likeRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID, CreatedAt: time.Now()})
		if err != nil && !isDuplicateKeyError(err) {
			return nil, err
		}
		isLiked = true
		message = "post liked success"
	} else {
		if err = s.likeRepo.DeleteLike(ctx, userID, postID); err != nil {
			return nil, err
		}
		isLiked = false
		message = "post unliked success"
	}

	count, err := s.likeRepo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &dto.ToggleLikeDTO{
		Message:    message,
		IsLiked:    isLiked,
		LikesCount: count,
	}, nil
}

func (s *postActionServiceImpl) GetLikes(ctx context.Context, postID uint64) ([]*dto.LikeDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	likes, err := s.likeRepo.GetLikesByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	likeDTOList := make([]*dto.LikeDTO, 0, len(likes))
	for _, like := range likes {
		count, err := s.postRepo.CountByAuthorID(ctx, like.UserID)
		if err != nil {
			return nil, err
		}
		userDTO, err := toUserDTO(&like.User, count)
		if err != nil {
			return nil, err
		}
		likeDTOList = append(likeDTOList, toLikeDTO(like, userDTO))
	}
	return likeDTOList, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return false
}
