package middleware

import (
	"net/http"
	"strings"
	"time"

	"trailer-rental-api/config"
	"trailer-rental-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthContext carries the resolved caller identity through a request.
// It is stored once under a single context key and never mutated; the
// role is only populated after an admin check resolved it from the
// store.
type AuthContext struct {
	SubjectID string
	Role      models.UserRole
}

const authContextKey = "authContext"

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the bearer token and stores the AuthContext.
// Role checks are not done here; the token only proves identity.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No token found."})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid || claims.UserID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "No user found."})
			c.Abort()
			return
		}
		c.Set(authContextKey, AuthContext{SubjectID: claims.UserID})
		c.Next()
	}
}

// AdminRequired resolves the caller's role from the users table and
// rejects anyone who is not an admin. The role lives in the store, not
// in the token, so every admin-gated call pays one lookup. Must run
// after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := GetAuthContext(c)
		var user models.User
		if err := config.DB.Select("id, role").First(&user, "id = ?", auth.SubjectID).Error; err != nil || user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "You are not authorized to perform this action.",
			})
			c.Abort()
			return
		}
		c.Set(authContextKey, AuthContext{SubjectID: user.ID, Role: user.Role})
		c.Next()
	}
}

// GetAuthContext extracts the caller identity placed by AuthRequired
func GetAuthContext(c *gin.Context) AuthContext {
	val, _ := c.Get(authContextKey)
	auth, _ := val.(AuthContext)
	return auth
}
