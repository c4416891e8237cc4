package handler

import (
	"Plume/internal/api/dto"
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/response"
	"Plume/internal/pkg/util"
	"Plume/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// ListComments 支持 ?post= 过滤，不带参数时返回全部评论
func (s *CommentHandler) ListComments(c *gin.Context) {
	var postID *uint64
	if raw := c.Query("post"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		postID = &id
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comments)
}

// CreateComment 评论入口创建评论，目标帖子来自请求体 post 字段
func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if req.Post == 0 {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, req.Post, req.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, comment)
}

func (s *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		response.Error(c, service.ErrCommentNotFound)
		return
	}

	comment, err := s.commentSvc.GetComment(c.Request.Context(), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

// UpdateComment PUT 与 PATCH 共用：均为部分更新
func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		response.Error(c, service.ErrCommentNotFound)
		return
	}

	var req dto.CommentUpdateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		response.Error(c, service.ErrCommentNotFound)
		return
	}

	if err = s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "comment deleted"})
}
