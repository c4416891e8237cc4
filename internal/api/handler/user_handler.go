package handler

import (
	"Plume/internal/api/dto"
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/response"
	"Plume/internal/pkg/util"
	"Plume/internal/service"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedSuccess(c, gin.H{
		"message": fmt.Sprintf("User - '%s' Registered Successfully", user.Email),
		"user":    user,
	})
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func (s *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	pair, err := s.userSvc.RefreshToken(c.Request.Context(), req.Refresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, pair)
}

// Logout 将当前访问令牌写入拒绝名单，之后的请求不再被接受
func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "logout success"})
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	user, err := s.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	var req dto.ProfileUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, user)
}

func (s *UserHandler) DeleteProfile(c *gin.Context) {
	userID := c.GetUint64(consts.CtxUserIDKey)

	if err := s.userSvc.DeleteAccount(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "account deleted"})
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, users)
}
