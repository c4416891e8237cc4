package api

import (
	"Plume/internal/api/middleware"
	"Plume/internal/pkg/logger"
	"Plume/internal/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, tokens *security.TokenManager) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 无需登录即可访问的接口
		apiGroup.POST("/register", group.UserHandler.Register)
		apiGroup.POST("/login", group.UserHandler.Login)
		apiGroup.POST("/token/refresh", group.UserHandler.Refresh)
		apiGroup.GET("/users", group.UserHandler.ListUsers)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware(tokens))
		{
			authGroup.POST("/logout", group.UserHandler.Logout)
			authGroup.GET("/profile", group.UserHandler.GetProfile)
			authGroup.PUT("/profile", group.UserHandler.UpdateProfile)
			authGroup.PATCH("/profile", group.UserHandler.UpdateProfile)
			authGroup.DELETE("/profile", group.UserHandler.DeleteProfile)
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware(tokens))
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/likes", group.PostActionHandler.GetLikes)
				authOptGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(tokens))
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.PATCH("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/:post_id/like", group.PostActionHandler.ToggleLike)
				authGroup.POST("/:post_id/comment", group.PostActionHandler.CreateCommentOnPost)
			}
		}

		commentGroup := apiGroup.Group("/comment")
		{
			authOptGroup := commentGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware(tokens))
			{
				authOptGroup.GET("", group.CommentHandler.ListComments)
				authOptGroup.GET("/:comment_id", group.CommentHandler.GetComment)
			}

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware(tokens))
			{
				authGroup.POST("", group.CommentHandler.CreateComment)
				authGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
				authGroup.PATCH("/:comment_id", group.CommentHandler.UpdateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(tokens))
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
