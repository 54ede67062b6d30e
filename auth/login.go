package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the signed-in user plus the session token the dashboard
// sends back as a bearer token.
type LoginResponse struct {
	ID        uint        `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// POST /auth
func Login(db *gorm.DB, cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		_ = c.ShouldBindJSON(&req)
		email := strings.TrimSpace(req.Email)
		if email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
			return
		}

		var user models.User
		err := db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}
		if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := db.WithContext(c.Request.Context()).Model(&user).Update("last_active", models.JustNow).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update last activity"})
			return
		}

		token, expiresAt, err := IssueToken(user, cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			Token:     token,
			ExpiresAt: expiresAt,
		})
	}
}

// IssueToken signs a session token for user that expires after cfg.TTL.
func IssueToken(user models.User, cfg config.JWTConfig) (string, time.Time, error) {
	expiresAt := time.Now().Add(cfg.TTL)
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
