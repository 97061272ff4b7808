package middleware

import (
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// OptionalAuth resolves the current user when a valid token is present and
// continues anonymously otherwise. Used on routes that are public but show
// more to the resource owner, like job detail pages with draft postings.
func OptionalAuth(tokens *token.Service, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := tokens.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			c.Next()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)
		c.Set(userContextKey, user)
		c.Next()
	}
}
