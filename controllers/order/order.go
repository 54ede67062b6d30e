package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/junaidrashid-git/orbit-aether/utils"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderInput struct {
	ID       models.FlexID `json:"id"`
	ClientID models.FlexID `json:"clientId"`
	Amount   float64       `json:"amount"`
	Date     string        `json:"date"`
	Status   string        `json:"status"`
}

// -------- Helpers --------

// withClientName selects orders together with the name of their client.
func withClientName(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Order{}).
		Select("orders.*, COALESCE(clients.name, ?) AS client_name", models.UnknownClient).
		Joins("LEFT JOIN clients ON clients.id = orders.client_id")
}

func findOrder(db *gorm.DB, id uint) (models.Order, error) {
	var order models.Order
	err := withClientName(db).Where("orders.id = ?", id).First(&order).Error
	return order, err
}

// isStatusOnly reports whether the request carries exactly an id and a status,
// which is how the order board moves a card between columns. urlID is set when
// the id came from the path or query string instead of the body.
func isStatusOnly(body []byte, urlID bool) bool {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return false
	}
	if _, ok := keys["status"]; !ok {
		return false
	}
	_, hasID := keys["id"]
	switch len(keys) {
	case 1:
		return urlID
	case 2:
		return hasID
	default:
		return false
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// -------- Handlers --------

// GET /orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := []models.Order{}
		if err := withClientName(db.WithContext(c.Request.Context())).
			Order("orders.date DESC").
			Order("orders.id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// POST /orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input OrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.ClientID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientId is required"})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			ClientID: input.ClientID.Uint(),
			Amount:   input.Amount,
			Date:     strings.TrimSpace(input.Date),
			Status:   status,
		}
		if order.Date == "" {
			order.Date = today()
		}

		ctxDB := db.WithContext(c.Request.Context())
		if err := ctxDB.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		created, err := findOrder(ctxDB, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /orders
// A body of exactly {id, status} (or {status} with the id in the URL) only
// moves the order; anything else replaces every column but an omitted date.
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
			return
		}

		var input OrderInput
		if err := json.Unmarshal(body, &input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		urlID := false
		if input.ID == 0 {
			if id, ok := utils.ResourceID(c); ok {
				input.ID = models.FlexID(id)
				urlID = true
			}
		}
		if input.ID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}

		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctxDB := db.WithContext(c.Request.Context())
		query := ctxDB.Model(&models.Order{}).Where("id = ?", input.ID.Uint())
		if isStatusOnly(body, urlID) {
			err = query.Update("status", status).Error
		} else {
			if input.ClientID == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "clientId is required"})
				return
			}
			updates := map[string]interface{}{
				"client_id": input.ClientID.Uint(),
				"amount":    input.Amount,
				"status":    status,
			}
			// an omitted date keeps the stored one
			if date := strings.TrimSpace(input.Date); date != "" {
				updates["date"] = date
			}
			err = query.Updates(updates).Error
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		updated, err := findOrder(ctxDB, input.ID.Uint())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /orders?id=
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := utils.ResourceID(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID is required"})
			return
		}
		if err := db.WithContext(c.Request.Context()).Delete(&models.Order{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
