package handler

import (
	"Plume/internal/api/dto"
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/response"
	"Plume/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc  service.PostActionService
	commentSvc service.CommentService
}

func NewPostActionHandler(actionSvc service.PostActionService, commentSvc service.CommentService) *PostActionHandler {
	return &PostActionHandler{
		actionSvc:  actionSvc,
		commentSvc: commentSvc,
	}
}

// ToggleLike 点赞切换：创建点赞返回 201，取消点赞返回 200
func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	result, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.IsLiked {
		response.CreatedSuccess(c, result)
	} else {
		response.Success(c, result)
	}
}

func (s *PostActionHandler) GetLikes(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	likes, err := s.actionSvc.GetLikes(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, likes)
}

// CreateCommentOnPost 帖子入口创建评论，目标帖子来自路径
func (s *PostActionHandler) CreateCommentOnPost(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	var req dto.CommentCreateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, postID, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, comment)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), &postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}
