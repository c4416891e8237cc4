package service_test

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/pkg/security"
	"Plume/internal/repository"
	"Plume/internal/service"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	tokens   *security.TokenManager
	users    service.UserService
	posts    service.PostService
	actions  service.PostActionService
	comments service.CommentService
}

// newTestEnv 基于内存 SQLite 构建完整服务栈
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库只保留单连接，避免并发查询各见一库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Like{}))

	tokens := security.NewTokenManager("test-secret", time.Minute*30, time.Hour*24)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	return &testEnv{
		db:       db,
		tokens:   tokens,
		users:    service.NewUserService(userRepo, postRepo, tokens),
		posts:    service.NewPostService(postRepo, likeRepo, commentRepo),
		actions:  service.NewPostActionService(likeRepo, postRepo),
		comments: service.NewCommentService(commentRepo, postRepo),
	}
}

func (e *testEnv) registerUser(t *testing.T, email string) *dto.UserDTO {
	t.Helper()
	username := strings.Split(email, "@")[0]
	user, err := e.users.Register(context.Background(), &dto.RegisterDTO{
		Username:        &username,
		Email:           email,
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint64, title string) *dto.PostDTO {
	t.Helper()
	post, err := e.posts.CreatePost(context.Background(), authorID, &dto.PostBaseDTO{Title: title})
	require.NoError(t, err)
	return post
}
