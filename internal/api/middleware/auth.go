package middleware

import (
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/redis"
	"Plume/internal/pkg/response"
	"Plume/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if redis.Ready() {
			signature, err := security.ExtractSignature(tokenString)
			if err != nil {
				response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
				c.Abort()
				return
			}

			value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
			if err != nil {
				response.Fail(c, response.InternalServerError, "未知错误")
				c.Abort()
				return
			}
			if value != "" {
				response.Fail(c, response.Unauthorized, "Token 无效或已过期")
				c.Abort()
				return
			}
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(consts.CtxUserIDKey, claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), consts.CtxUserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
