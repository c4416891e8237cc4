package service_test

import (
	"Plume/internal/api/dto"
	"Plume/internal/model"
	"Plume/internal/pkg/util"
	"Plume/internal/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")

	post, err := env.posts.CreatePost(ctx, alice.ID, &dto.PostBaseDTO{
		Title:   "hello world",
		Caption: util.PtrString("first post"),
	})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "hello world", post.Title)
	require.NotNil(t, post.Author)
	assert.Equal(t, alice.ID, post.Author.ID)
	assert.Equal(t, int64(0), post.LikesCount)
	assert.Equal(t, int64(0), post.CommentsCount)
	assert.False(t, post.IsLiked)
	assert.Empty(t, post.Comments)

	got, err := env.posts.GetPost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = env.posts.GetPost(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}

func TestListPostsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")

	first := env.createPost(t, alice.ID, "first")
	time.Sleep(10 * time.Millisecond)
	second := env.createPost(t, alice.ID, "second")

	posts, err := env.posts.ListPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID)
	assert.Equal(t, first.ID, posts[1].ID)
}

func TestPostDerivedCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "counted")
	_, err := env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	_, err = env.comments.CreateComment(ctx, bob.ID, post.ID, "nice one")
	require.NoError(t, err)
	_, err = env.comments.CreateComment(ctx, alice.ID, post.ID, "thanks")
	require.NoError(t, err)

	// 点赞者视角
	got, err := env.posts.GetPost(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.LikesCount)
	assert.Equal(t, int64(2), got.CommentsCount)
	assert.Len(t, got.Comments, 2)
	assert.True(t, got.IsLiked)

	// 未点赞者视角
	got, err = env.posts.GetPost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLiked)

	// 匿名视角
	got, err = env.posts.GetPost(ctx, 0, post.ID)
	require.NoError(t, err)
	assert.False(t, got.IsLiked)
}

func TestUpdatePostPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")

	post, err := env.posts.CreatePost(ctx, alice.ID, &dto.PostBaseDTO{
		Title:   "original",
		Caption: util.PtrString("keep me"),
	})
	require.NoError(t, err)

	updated, err := env.posts.UpdatePost(ctx, alice.ID, post.ID, &dto.PostUpdateDTO{
		Title: util.PtrString("renamed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	require.NotNil(t, updated.Caption)
	assert.Equal(t, "keep me", *updated.Caption)
}

func TestUpdatePostNotOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "untouchable")

	_, err := env.posts.UpdatePost(ctx, bob.ID, post.ID, &dto.PostUpdateDTO{
		Title: util.PtrString("hijacked"),
	})
	assert.ErrorIs(t, err, service.ErrPermissionDenied)

	// 拒绝后内容不变
	got, err := env.posts.GetPost(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "untouchable", got.Title)
}

func TestDeletePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	post := env.createPost(t, alice.ID, "doomed")
	_, err := env.comments.CreateComment(ctx, bob.ID, post.ID, "bye")
	require.NoError(t, err)
	_, err = env.actions.ToggleLike(ctx, bob.ID, post.ID)
	require.NoError(t, err)

	// 非作者不能删除
	err = env.posts.DeletePost(ctx, bob.ID, post.ID)
	assert.ErrorIs(t, err, service.ErrPermissionDenied)

	require.NoError(t, env.posts.DeletePost(ctx, alice.ID, post.ID))

	_, err = env.posts.GetPost(ctx, alice.ID, post.ID)
	assert.ErrorIs(t, err, service.ErrPostNotFound)

	// 帖子下的互动一并删除
	var comments, likes int64
	require.NoError(t, env.db.Model(&model.Comment{}).Count(&comments).Error)
	require.NoError(t, env.db.Model(&model.Like{}).Count(&likes).Error)
	assert.Zero(t, comments)
	assert.Zero(t, likes)
}
