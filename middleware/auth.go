package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/utils"
)

const (
	// ContextUser is the gin context key the authenticated account is
	// stored under.
	ContextUser = "user"
	// TokenCookie is the session cookie name. The Authorization header is
	// the fallback for clients that do not carry cookies.
	TokenCookie = "token"
)

// Authenticate verifies the session token and attaches the account to the
// request context. Token lookup order: cookie, then "Authorization: Bearer".
func Authenticate(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := c.Cookie(TokenCookie)
		if tokenString == "" {
			tokenString = bearerToken(c.GetHeader("Authorization"))
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access Denied. No token provided.",
			})
			return
		}

		claims, err := utils.VerifyToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Invalid or expired token.",
			})
			return
		}

		// The token may outlive the account; re-check it on every request.
		var user models.User
		if err := db.Select("id", "email", "role", "created_at", "updated_at").
			Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "User not found.",
			})
			return
		}

		c.Set(ContextUser, &user)
		c.Next()
	}
}

// RequireAdmin rejects any authenticated account whose role is not admin.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Access Denied. Admin privileges required.",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account Authenticate stored in the context, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
