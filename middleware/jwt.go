package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/caianesantos/tripMind/utils"

	"github.com/gin-gonic/gin"
)

// extractToken aceita "Bearer <t>" e "Token <t>" (o front legado manda "Token")
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	for _, prefix := range []string{"Bearer ", "Token "} {
		if strings.HasPrefix(header, prefix) {
			return strings.TrimPrefix(header, prefix)
		}
	}
	return ""
}

func tokenRevoked(token string) bool {
	rdb := utils.GetRedis()
	if rdb == nil {
		return false
	}
	_, err := rdb.Get(context.Background(), "blacklist:"+token).Result()
	return err == nil
}

func resolveUserID(token string) (uint, bool) {
	claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET"))
	if err != nil {
		return 0, false
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}
	return uint(userID), true
}

// JWTAuthMiddleware exige um token válido e grava user_id no contexto
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciais de autenticação não fornecidas"})
			c.Abort()
			return
		}
		if tokenRevoked(token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token revogado"})
			c.Abort()
			return
		}
		userID, ok := resolveUserID(token)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido ou expirado"})
			c.Abort()
			return
		}
		c.Set("user_id", int(userID))
		c.Set("token", token)
		c.Next()
	}
}

// OptionalJWTMiddleware resolve o caller quando houver token, mas nunca bloqueia.
// Usado na busca de roteiros, aberta a anônimos.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" && !tokenRevoked(token) {
			if userID, ok := resolveUserID(token); ok {
				c.Set("user_id", int(userID))
			}
		}
		c.Next()
	}
}
