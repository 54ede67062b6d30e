package storeControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/junaidrashid-git/orbit-aether/models"
	"gorm.io/gorm"
)

type NewsletterRequest struct {
	Email string `json:"email"`
}

var validate = validator.New()

// normalizeEmail lowercases and strips markup from a submitted address.
func normalizeEmail(email string) string {
	return strings.ToLower(sanitize(email))
}

// POST /api/newsletter
func Subscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsletterRequest
		_ = c.ShouldBindJSON(&req)
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		email := normalizeEmail(req.Email)
		if err := validate.Var(email, "required,email"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to subscribe. Email may be invalid or already subscribed."})
			return
		}

		subscriber := models.NewsletterSubscriber{Email: email}
		if err := db.WithContext(c.Request.Context()).Create(&subscriber).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to subscribe. Email may be invalid or already subscribed."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Successfully subscribed to newsletter"})
	}
}

// GET /api/newsletter
func GetSubscribers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subscribers []models.NewsletterSubscriber
		if err := db.WithContext(c.Request.Context()).
			Order("subscribed_at DESC").
			Order("id DESC").
			Find(&subscribers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch subscribers"})
			return
		}
		if len(subscribers) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No subscribers found"})
			return
		}
		c.JSON(http.StatusOK, subscribers)
	}
}

// DELETE /api/newsletter
func Unsubscribe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NewsletterRequest
		_ = c.ShouldBindJSON(&req)
		if strings.TrimSpace(req.Email) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
			return
		}

		if err := db.WithContext(c.Request.Context()).
			Where("email = ?", normalizeEmail(req.Email)).
			Delete(&models.NewsletterSubscriber{}).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to unsubscribe"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Successfully unsubscribed"})
	}
}
