package middleware

import (
	"fmt"
	"strings"

	"github.com/adityachavhan45/blogbackend/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token and sets user_id in the context.
// Tokens are HS256-signed by the identity service; this backend only verifies
// the signature and extracts the subject.
func AuthMiddleware(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			util.RespondUnauthorized(c, "no token, authorization denied")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			util.RespondUnauthorized(c, "token is not valid")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			util.RespondUnauthorized(c, "token is not valid")
			c.Abort()
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			// Identity service historically issued tokens with "userId"
			userID, _ = claims["userId"].(string)
		}
		if userID == "" {
			util.RespondUnauthorized(c, "token is not valid")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
