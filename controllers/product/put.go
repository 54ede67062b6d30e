package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

// UpdateProduct overwrites a product with the submitted fields and echoes them.
// The id comes from the body, the path or ?id=.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
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

		product, err := input.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.WithContext(c.Request.Context()).Model(&models.Product{}).
			Where("id = ?", product.ID).
			Updates(columns(product)).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
