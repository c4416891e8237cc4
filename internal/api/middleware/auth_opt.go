package middleware

import (
	"Plume/internal/pkg/consts"
	"Plume/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入 UID，失败或缺失则视为匿名（UID 为 0）
func AuthOptionalMiddleware(tokens *security.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set(consts.CtxUserIDKey, uint64(0))
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateAccessToken(token)

		if err != nil {
			c.Set(consts.CtxUserIDKey, uint64(0))
		} else {
			c.Set(consts.CtxUserIDKey, claims.UserID)
			newCtx := context.WithValue(c.Request.Context(), consts.CtxUserIDKey, claims.UserID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}
