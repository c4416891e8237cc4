package wire

import (
	"Plume/internal/api"
	"Plume/internal/api/config"
	"Plume/internal/api/handler"
	"Plume/internal/pkg/security"
	"Plume/internal/repository"
	"Plume/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
	Tokens *security.TokenManager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	tokens := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessExpMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshExpHour)*time.Hour,
	)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	likeRepo := repository.NewLikeRepo(db)
	commentRepo := repository.NewCommentRepo(db)

	userService := service.NewUserService(userRepo, postRepo, tokens)
	postService := service.NewPostService(postRepo, likeRepo, commentRepo)
	postActionService := service.NewPostActionService(likeRepo, postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(postActionService, commentService),
		CommentHandler:    handler.NewCommentHandler(commentService),
		MediaHandler:      handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers, tokens)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
		Tokens: tokens,
	}, nil
}
