package clientControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

type ClientInput struct {
	ID      models.FlexID `json:"id"`
	Name    string        `json:"name"`
	Company string        `json:"company"`
	Email   string        `json:"email"`
	Status  string        `json:"status"`
	Revenue float64       `json:"revenue"`
}

// toModel validates the input and converts it into a Client row.
func (in ClientInput) toModel() (models.Client, error) {
	status, err := models.ParseClientStatus(in.Status)
	if err != nil {
		return models.Client{}, err
	}
	return models.Client{
		ID:      in.ID.Uint(),
		Name:    strings.TrimSpace(in.Name),
		Company: in.Company,
		Email:   strings.TrimSpace(in.Email),
		Status:  status,
		Revenue: in.Revenue,
	}, nil
}

// GET /clients
func GetClients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var clients []models.Client
		if err := db.WithContext(c.Request.Context()).Order("id DESC").Find(&clients).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
			return
		}
		c.JSON(http.StatusOK, clients)
	}
}

// POST /clients
func CreateClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ClientInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		client, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		client.ID = 0

		if err := db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}

// PUT /clients
func UpdateClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ClientInput
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

		client, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.WithContext(c.Request.Context()).Model(&models.Client{}).
			Where("id = ?", client.ID).
			Updates(map[string]interface{}{
				"name":    client.Name,
				"company": client.Company,
				"email":   client.Email,
				"status":  client.Status,
				"revenue": client.Revenue,
			}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

// DELETE /clients?id=
func DeleteClient(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		if err := db.WithContext(c.Request.Context()).Delete(&models.Client{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
