package supplierControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

type SupplierInput struct {
	ID       models.FlexID `json:"id"`
	Name     string        `json:"name"`
	Contact  string        `json:"contact"`
	Category string        `json:"category"`
	Status   string        `json:"status"`
}

func (in SupplierInput) toModel() (models.Supplier, error) {
	status, err := models.ParseSupplierStatus(in.Status)
	if err != nil {
		return models.Supplier{}, err
	}
	return models.Supplier{
		ID:       in.ID.Uint(),
		Name:     strings.TrimSpace(in.Name),
		Contact:  in.Contact,
		Category: in.Category,
		Status:   status,
	}, nil
}

// GET /suppliers
func GetSuppliers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var suppliers []models.Supplier
		if err := db.WithContext(c.Request.Context()).Order("id DESC").Find(&suppliers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suppliers"})
			return
		}
		c.JSON(http.StatusOK, suppliers)
	}
}

// POST /suppliers
func CreateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SupplierInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
			return
		}

		supplier, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		supplier.ID = 0

		if err := db.WithContext(c.Request.Context()).Create(&supplier).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
			return
		}
		c.JSON(http.StatusCreated, supplier)
	}
}

// PUT /suppliers
func UpdateSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SupplierInput
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

		supplier, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.WithContext(c.Request.Context()).Model(&models.Supplier{}).
			Where("id = ?", supplier.ID).
			Updates(map[string]interface{}{
				"name":     supplier.Name,
				"contact":  supplier.Contact,
				"category": supplier.Category,
				"status":   supplier.Status,
			}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
			return
		}
		c.JSON(http.StatusOK, supplier)
	}
}

// DELETE /suppliers?id=
func DeleteSupplier(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		if err := db.WithContext(c.Request.Context()).Delete(&models.Supplier{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
