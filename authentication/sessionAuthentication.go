package authentication

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/huseyin4215/QRCal-sub002/configuration"
	"github.com/huseyin4215/QRCal-sub002/models"
)

// GenerateSessionToken issues a signed token carrying the user's profile.
// The history view reads this profile back for self-views.
func GenerateSessionToken(u models.User) (string, error) {
	claims := &models.SessionClaims{
		UserID:        u.ID,
		Role:          u.Role,
		Name:          u.Name,
		Title:         u.Title,
		Email:         u.Email,
		Department:    u.Department,
		StudentNumber: u.StudentNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configuration.Cfg.JWTSecret))
}

func parseSessionToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(configuration.Cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SessionMiddleware verifies the bearer token and stores the claims on the
// request context.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing the authorization header"})
			return
		}

		claims, err := parseSessionToken(strings.TrimSpace(strings.TrimPrefix(header, "Bearer")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("session", claims)
		c.Next()
	}
}

// SessionFrom pulls the parsed claims back out of the gin context.
func SessionFrom(c *gin.Context) *models.SessionClaims {
	if v, ok := c.Get("session"); ok {
		if claims, ok := v.(*models.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

// AdminOnly guards the roster and the view-any-history routes.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := SessionFrom(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
