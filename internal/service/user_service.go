package service

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/redis"
	"Plume/internal/pkg/security"
	"Plume/internal/repository"
	"context"
	"time"
)

const (
	// MinPasswordLength 密码最小长度策略
	MinPasswordLength = 8

	tokenDenyTTL = time.Hour * 24
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error)
	RefreshToken(ctx context.Context, refresh string) (*security.TokenPair, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.ProfileUpdateDTO) (*dto.UserDTO, error)
	DeleteAccount(ctx context.Context, userID uint64) error
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	postRepo repository.PostRepo
	tokens   *security.TokenManager
}

func NewUserService(userRepo repository.UserRepo, postRepo repository.PostRepo, tokens *security.TokenManager) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		postRepo: postRepo,
		tokens:   tokens,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) (*dto.UserDTO, error) {
	if len(regDTO.Password) < MinPasswordLength {
		return nil, ErrPasswordTooWeak
	}
	if regDTO.Password != regDTO.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	findUser, err := s.userRepo.GetUserByEmail(ctx, regDTO.Email)
	if err != nil {
		return nil, err
	}
	if findUser != nil {
		return nil, ErrEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          regDTO.Email,
		Username:       regDTO.Username,
		Password:       passwordHash,
		Bio:            regDTO.Bio,
		ProfilePicture: regDTO.ProfilePicture,
		IsActive:       true,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserDTO(user, 0)
}

func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (*dto.LoginResultDTO, error) {
	if loginDTO.Email == "" || loginDTO.Password == "" {
		return nil, ErrMissingLoginCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, loginDTO.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		User:     user.Email,
		Username: user.Username,
		Access:   pair.Access,
		Refresh:  pair.Refresh,
	}, nil
}

func (s *UserServiceImpl) RefreshToken(ctx context.Context, refresh string) (*security.TokenPair, error) {
	claims, err := s.tokens.ValidateRefreshToken(refresh)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrTokenInvalid
	}

	return s.tokens.GenerateTokenPair(user.ID)
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	if !redis.Ready() {
		return nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, tokenDenyTTL)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	count, err := s.postRepo.CountByAuthorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user, count)
}

// UpdateProfile 部分更新：仅更新提供的字段，id 与注册时间只读
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, updateDTO *dto.ProfileUpdateDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := make(map[string]interface{})
	if updateDTO.Username != nil {
		fields["username"] = *updateDTO.Username
	}
	if updateDTO.Email != nil && *updateDTO.Email != user.Email {
		other, err := s.userRepo.GetUserByEmail(ctx, *updateDTO.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, ErrEmailExist
		}
		fields["email"] = *updateDTO.Email
	}
	if updateDTO.Bio != nil {
		fields["bio"] = *updateDTO.Bio
	}
	if updateDTO.ProfilePicture != nil {
		fields["profile_picture"] = *updateDTO.ProfilePicture
	}

	if err = s.userRepo.UpdateUser(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *UserServiceImpl) DeleteAccount(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	userDTOList := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		count, err := s.postRepo.CountByAuthorID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		userDTO, err := toUserDTO(user, count)
		if err != nil {
			return nil, err
		}
		userDTOList = append(userDTOList, userDTO)
	}
	return userDTOList, nil
}
