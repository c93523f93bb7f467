package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cppla/travelquest/utils"
)

const (
	// ContextUserIDKey is the key used to store authenticated user ID in Gin context.
	ContextUserIDKey = "user_id"
	// ContextUsernameKey stores the username inside Gin context.
	ContextUsernameKey = "username"
	// ContextClaimsKey stores the parsed token claims, used by logout.
	ContextClaimsKey = "claims"
	// ContextTokenKey stores the raw bearer token.
	ContextTokenKey = "token"
)

// AuthRequired ensures the request is authenticated via JWT.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, code, msg := bearerToken(ctx)
		if code != 0 {
			utils.Error(ctx, http.StatusUnauthorized, code, msg)
			ctx.Abort()
			return
		}

		if utils.IsTokenBlacklisted(ctx.Request.Context(), token) {
			utils.Error(ctx, http.StatusUnauthorized, 40104, "token revoked")
			ctx.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUsernameKey, claims.Username)
		ctx.Set(ContextClaimsKey, claims)
		ctx.Set(ContextTokenKey, token)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context) (string, int, string) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", 40101, "authorization header missing"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", 40102, "invalid authorization header format"
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", 40103, "empty bearer token"
	}
	return token, 0, ""
}
