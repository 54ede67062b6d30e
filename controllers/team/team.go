package teamControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MemberInput struct {
	ID       models.FlexID `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     string        `json:"role"`
	Status   string        `json:"status"`
	Password string        `json:"password"`
}

// GET /team
func GetMembers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		members := []models.User{}
		if err := db.WithContext(c.Request.Context()).Order("id DESC").Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

// POST /team
// The password falls back to defaultPassword when the payload has none.
func CreateMember(db *gorm.DB, defaultPassword string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		name := strings.TrimSpace(input.Name)
		email := strings.TrimSpace(input.Email)
		if name == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and email are required"})
			return
		}

		role, err := models.ParseRole(input.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, err := models.ParseMemberStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		password := input.Password
		if password == "" {
			password = defaultPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		member := models.User{
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Status:       status,
			LastActive:   models.JustNow,
		}
		if err := db.WithContext(c.Request.Context()).Create(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
			return
		}
		c.JSON(http.StatusCreated, member)
	}
}

// PUT /team
// Omitted or empty fields keep their stored values; a non-empty password
// rotates the stored hash.
func UpdateMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MemberInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.ID == 0 {
			if id, ok := utils.ResourceID(c); ok {
				input.ID = models.FlexID(id)
			}
		}
		if input.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		updates := map[string]interface{}{}
		if strings.TrimSpace(input.Role) != "" {
			role, err := models.ParseRole(input.Role)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["role"] = role
		}
		if strings.TrimSpace(input.Status) != "" {
			status, err := models.ParseMemberStatus(input.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates["status"] = status
		}
		if name := strings.TrimSpace(input.Name); name != "" {
			updates["name"] = name
		}
		if email := strings.TrimSpace(input.Email); email != "" {
			updates["email"] = email
		}
		if input.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
				return
			}
			updates["password"] = string(hash)
		}

		ctxDB := db.WithContext(c.Request.Context())
		if len(updates) > 0 {
			if err := ctxDB.Model(&models.User{}).Where("id = ?", input.ID.Uint()).Updates(updates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
				return
			}
		}

		var member models.User
		if err := ctxDB.First(&member, input.ID.Uint()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load team member"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// DELETE /team?id=
// Tasks assigned to the member become unassigned.
func DeleteMember(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		err := db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Task{}).Where("assignee_id = ?", id).
				Update("assignee_id", nil).Error; err != nil {
				return err
			}
			return tx.Delete(&models.User{}, id).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
