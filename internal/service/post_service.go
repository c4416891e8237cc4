package service

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/repository"
	"context"

	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, userID, postID uint64) (*dto.PostDTO, error)
	ListPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	likeRepo    repository.LikeRepo
	commentRepo repository.CommentRepo
}

func NewPostService(postRepo repository.PostRepo, likeRepo repository.LikeRepo, commentRepo repository.CommentRepo) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost 作者恒为当前用户，忽略请求体中的任何作者信息
func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, req *dto.PostBaseDTO) (*dto.PostDTO, error) {
	post := &model.Post{
		AuthorID: userID,
		Title:    req.Title,
		Image:    req.Image,
		Caption:  req.Caption,
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, userID, post.ID)
}

func (s *PostServiceImpl) GetPost(ctx context.Context, userID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.assemblePost(ctx, userID, post)
}

func (s *PostServiceImpl) ListPosts(ctx context.Context, userID uint64) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	postDTOList := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO, err := s.assemblePost(ctx, userID, post)
		if err != nil {
			return nil, err
		}
		postDTOList = append(postDTOList, postDTO)
	}
	return postDTOList, nil
}

// UpdatePost 部分更新：仅更新提供的字段，作者与时间戳只读
func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if err = checkOwnership(post, userID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Caption != nil {
		fields["caption"] = *req.Caption
	}

	if err = s.postRepo.UpdatePost(ctx, postID, fields); err != nil {
		return nil, err
	}

	return s.GetPost(ctx, userID, postID)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if err = checkOwnership(post, userID); err != nil {
		return err
	}
	return s.postRepo.DeletePost(ctx, postID)
}

// assemblePost 组装帖子详情：派生计数读取时计算，不做存储
func (s *PostServiceImpl) assemblePost(ctx context.Context, userID uint64, post *model.Post) (*dto.PostDTO, error) {
	var (
		likesCount    int64
		commentsCount int64
		isLiked       bool
		authorPosts   int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		likesCount, err = s.likeRepo.CountByPostID(gCtx, post.ID)
		return err
	})
	g.Go(func() error {
		var err error
		commentsCount, err = s.commentRepo.CountByPostID(gCtx, post.ID)
		return err
	})
	g.Go(func() error {
		var err error
		authorPosts, err = s.postRepo.CountByAuthorID(gCtx, post.AuthorID)
		return err
	})
	g.Go(func() error {
		if userID == 0 {
			return nil
		}
		like, err := s.likeRepo.GetLike(gCtx, userID, post.ID)
		if err != nil {
			return err
		}
		isLiked = like != nil
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authorDTO, err := toUserDTO(&post.Author, authorPosts)
	if err != nil {
		return nil, err
	}

	comments := make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		comment := &post.Comments[i]
		count, err := s.postRepo.CountByAuthorID(ctx, comment.UserID)
		if err != nil {
			return nil, err
		}
		commentUserDTO, err := toUserDTO(&comment.User, count)
		if err != nil {
			return nil, err
		}
		commentDTO, err := toCommentDTO(comment, commentUserDTO)
		if err != nil {
			return nil, err
		}
		comments = append(comments, commentDTO)
	}

	return &dto.PostDTO{
		ID:            post.ID,
		Author:        authorDTO,
		Title:         post.Title,
		Image:         resolveImageURL(post.Image),
		Caption:       post.Caption,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		LikesCount:    likesCount,
		CommentsCount: commentsCount,
		Comments:      comments,
		IsLiked:       isLiked,
	}, nil
}
