package service_test

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/pkg/util"
	"Plume/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "alice@example.com")
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, int64(0), user.PostsCount)
	assert.False(t, user.DateJoined.IsZero())

	// 邮箱唯一
	_, err := env.users.Register(ctx, &dto.RegisterDTO{
		Email:           "alice@example.com",
		Password:        "password123",
		PasswordConfirm: "password123",
	})
	assert.ErrorIs(t, err, service.ErrEmailExist)

	// 密码明文不落库
	var stored model.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, stored.IsActive)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, &dto.RegisterDTO{
		Email:           "bob@example.com",
		Password:        "short",
		PasswordConfirm: "short",
	})
	assert.ErrorIs(t, err, service.ErrPasswordTooWeak)

	_, err = env.users.Register(ctx, &dto.RegisterDTO{
		Email:           "bob@example.com",
		Password:        "password123",
		PasswordConfirm: "password456",
	})
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "alice@example.com")

	result, err := env.users.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", result.User)
	assert.NotEmpty(t, result.Access)
	assert.NotEmpty(t, result.Refresh)

	claims, err := env.tokens.ValidateAccessToken(result.Access)
	require.NoError(t, err)
	assert.NotZero(t, claims.UserID)

	_, err = env.users.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "wrongpassword"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.users.Login(ctx, &dto.LoginDTO{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = env.users.Login(ctx, &dto.LoginDTO{Email: "", Password: ""})
	assert.ErrorIs(t, err, service.ErrMissingLoginCredentials)
}

func TestLoginDisabledUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "alice@example.com")

	require.NoError(t, env.db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Update("is_active", false).Error)

	_, err := env.users.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrUserDisabled)
}

func TestRefreshToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "alice@example.com")

	result, err := env.users.Login(ctx, &dto.LoginDTO{Email: "alice@example.com", Password: "password123"})
	require.NoError(t, err)

	pair, err := env.users.RefreshToken(ctx, result.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	// access 令牌不能用于刷新
	_, err = env.users.RefreshToken(ctx, result.Access)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)

	_, err = env.users.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "alice@example.com")
	env.createPost(t, user.ID, "first")
	env.createPost(t, user.ID, "second")

	profile, err := env.users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.PostsCount)

	_, err = env.users.GetProfile(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "alice@example.com")
	other := env.registerUser(t, "bob@example.com")

	updated, err := env.users.UpdateProfile(ctx, user.ID, &dto.ProfileUpdateDTO{
		Bio: util.PtrString("hello"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "hello", *updated.Bio)
	// 未提供的字段保持不变
	assert.Equal(t, "alice@example.com", updated.Email)

	// 不能改成他人邮箱
	_, err = env.users.UpdateProfile(ctx, user.ID, &dto.ProfileUpdateDTO{
		Email: util.PtrString(other.Email),
	})
	assert.ErrorIs(t, err, service.ErrEmailExist)
}

func TestDeleteAccountCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "alice post")
	_, err := env.comments.CreateComment(ctx, bob.ID, post.ID, "nice")
	require.NoError(t, err)
	_, err = env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)

	require.NoError(t, env.users.DeleteAccount(ctx, alice.ID))

	// 作者删除后其帖子及帖子下的互动一并消失
	var posts, comments, likes int64
	require.NoError(t, env.db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, env.db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, env.db.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
	assert.Zero(t, likes)

	_, err = env.users.GetProfile(ctx, alice.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	env.registerUser(t, "bob@example.com")
	env.createPost(t, alice.ID, "hi")

	users, err := env.users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	counts := make(map[string]int64, len(users))
	for _, u := range users {
		counts[u.Email] = u.PostsCount
	}
	assert.Equal(t, int64(1), counts["alice@example.com"])
	assert.Equal(t, int64(0), counts["bob@example.com"])
}
