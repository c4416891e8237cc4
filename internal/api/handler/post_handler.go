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

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	posts, err := s.postSvc.ListPosts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, post)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

// UpdatePost PUT 与 PATCH 共用：均为部分更新，未提供的字段保持不变
func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	var req dto.PostUpdateDTO
	if err = c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), userID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)
	postID, err := parseIDParam(c, "post_id")
	if err != nil {
		response.Error(c, service.ErrPostNotFound)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "post deleted"})
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
