package service_test

import (
	"Plume/internal/service"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "likeable")

	// 第一次切换：点赞
	result, err := env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, int64(1), result.LikesCount)
	assert.Equal(t, "post liked success", result.Message)

	// 第二次切换：取消
	result, err = env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Equal(t, int64(0), result.LikesCount)
	assert.Equal(t, "post unliked success", result.Message)

	// 第三次切换：回到点赞态
	result, err = env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, result.IsLiked)
	assert.Equal(t, int64(1), result.LikesCount)
}

func TestToggleLikeMissingPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")

	_, err := env.actions.ToggleLike(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}

func TestToggleLikePerUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "popular")

	_, err := env.actions.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	result, err := env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.LikesCount)

	// 一人取消不影响他人
	result, err = env.actions.ToggleLike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, result.IsLiked)
	assert.Equal(t, int64(1), result.LikesCount)
}

func TestGetLikes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "liked")
	_, err := env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)

	likes, err := env.actions.GetLikes(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, post.ID, likes[0].Post)
	require.NotNil(t, likes[0].User)
	assert.Equal(t, bob.ID, likes[0].User.ID)

	_, err = env.actions.GetLikes(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}
