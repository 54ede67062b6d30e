package storeControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"gorm.io/gorm"
)

// GetProducts serves the catalog: one product with ?id=, a category with
// ?category=, otherwise everything newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctxDB := db.WithContext(c.Request.Context())

		if idParam := c.Query("id"); idParam != "" {
			id, err := strconv.ParseUint(idParam, 10, 64)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			var product models.StoreProduct
			if err := ctxDB.First(&product, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve product"})
				}
				return
			}
			c.JSON(http.StatusOK, product)
			return
		}

		query := ctxDB.Model(&models.StoreProduct{})
		if category := strings.TrimSpace(c.Query("category")); category != "" {
			query = query.Where("category = ?", category)
		}

		var products []models.StoreProduct
		if err := query.Order("created_at DESC").Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		if len(products) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No products found"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
