package service

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/repository"
	"context"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error)
	GetComment(ctx context.Context, commentID uint64) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID *uint64) ([]*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment 先解析目标帖子，不存在则失败且不写入任何记录
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID, postID uint64, content string) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return s.GetComment(ctx, comment.ID)
}

func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uint64) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	return s.assembleComment(ctx, comment)
}

func (s *commentServiceImpl) ListComments(ctx context.Context, postID *uint64) ([]*dto.CommentDTO, error) {
	var comments []*model.Comment
	var err error
	if postID != nil {
		comments, err = s.commentRepo.GetCommentsByPostID(ctx, *postID)
	} else {
		comments, err = s.commentRepo.GetAllComments(ctx)
	}
	if err != nil {
		return nil, err
	}

	commentDTOList := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO, err := s.assembleComment(ctx, comment)
		if err != nil {
			return nil, err
		}
		commentDTOList = append(commentDTOList, commentDTO)
	}
	return commentDTOList, nil
}

// UpdateComment 部分更新：仅更新提供的字段，id 与时间戳只读
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if err = checkOwnership(comment, userID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Content != nil {
		fields["content"] = *req.Content
	}

	if err = s.commentRepo.UpdateComment(ctx, commentID, fields); err != nil {
		return nil, err
	}

	return s.GetComment(ctx, commentID)
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if err = checkOwnership(comment, userID); err != nil {
		return err
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}

func (s *commentServiceImpl) assembleComment(ctx context.Context, comment *model.Comment) (*dto.CommentDTO, error) {
	count, err := s.postRepo.CountByAuthorID(ctx, comment.UserID)
	if err != nil {
		return nil, err
	}
	userDTO, err := toUserDTO(&comment.User, count)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(comment, userDTO)
}
