package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

// DeleteProduct removes a product. Unknown ids still succeed.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		if err := db.WithContext(c.Request.Context()).Delete(&models.Product{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
