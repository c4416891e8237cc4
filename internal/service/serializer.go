package service

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/pkg/minio"

	"github.com/jinzhu/copier"
)

func toUserDTO(user *model.User, postsCount int64) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.DateJoined = user.CreatedAt
	userDTO.PostsCount = postsCount
	if user.ProfilePicture != nil {
		url := minio.GetPublicURL(*user.ProfilePicture)
		userDTO.ProfilePicture = &url
	}
	return userDTO, nil
}

func toCommentDTO(comment *model.Comment, userDTO *dto.UserDTO) (*dto.CommentDTO, error) {
	commentDTO := &dto.CommentDTO{}
	if err := copier.Copy(commentDTO, comment); err != nil {
		return nil, err
	}
	commentDTO.User = userDTO
	return commentDTO, nil
}

func toLikeDTO(like *model.Like, userDTO *dto.UserDTO) *dto.LikeDTO {
	return &dto.LikeDTO{
		ID:        like.ID,
		User:      userDTO,
		Post:      like.PostID,
		CreatedAt: like.CreatedAt,
	}
}

func resolveImageURL(objectName *string) *string {
	if objectName == nil {
		return nil
	}
	url := minio.GetPublicURL(*objectName)
	return &url
}
