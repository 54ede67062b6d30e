package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

type ImportResult struct {
	Created int `json:"created_count"`
	Updated int `json:"updated_count"`
	Skipped int `json:"skipped_count"`
}

// parseRow reads one sheet row in the export layout. The id is zero when the
// ID column is blank.
func parseRow(row *xlsx.Row) (models.Product, bool) {
	get := func(index int) string {
		if index < len(row.Cells) {
			return strings.TrimSpace(row.Cells[index].String())
		}
		return ""
	}

	name, sku := get(1), get(2)
	if name == "" || sku == "" {
		return models.Product{}, false
	}

	var id uint64
	if raw := get(0); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			return models.Product{}, false
		}
		id = uint64(parsed)
	}

	price, err := strconv.ParseFloat(get(3), 64)
	if err != nil {
		return models.Product{}, false
	}
	stock := 0
	if raw := get(4); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Product{}, false
		}
		stock = int(f)
	}

	status, err := models.ParseStockStatus(get(6), stock)
	if err != nil {
		return models.Product{}, false
	}

	return models.Product{
		ID:       uint(id),
		Name:     name,
		SKU:      sku,
		Price:    price,
		Stock:    stock,
		Category: get(5),
		Status:   status,
	}, true
}

// ImportSheet upserts the rows of the first sheet. Rows naming an existing id
// update it, all others are inserted.
func ImportSheet(db *gorm.DB, xlFile *xlsx.File) ImportResult {
	var result ImportResult
	sheet := xlFile.Sheets[0]

	for i := 1; i < len(sheet.Rows); i++ {
		product, ok := parseRow(sheet.Rows[i])
		if !ok {
			result.Skipped++
			continue
		}

		if product.ID != 0 {
			var existing models.Product
			err := db.First(&existing, product.ID).Error
			if err == nil {
				if err := db.Model(&existing).Updates(columns(product)).Error; err != nil {
					result.Skipped++
				} else {
					result.Updated++
				}
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped++
				continue
			}
			product.ID = 0
		}

		if err := db.Create(&product).Error; err == nil {
			result.Created++
		} else {
			result.Skipped++
		}
	}
	return result
}

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || len(xlFile.Sheets[0].Rows) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		result := ImportSheet(db.WithContext(c.Request.Context()), xlFile)
		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": result.Created,
			"updated_count": result.Updated,
			"skipped_count": result.Skipped,
		})
	}
}
