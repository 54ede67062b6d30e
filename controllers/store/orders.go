package storeControllers

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// -------- Errors --------

var (
	ErrIncompleteOrder = errors.New("order data is incomplete")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidSize     = errors.New("invalid size")
	ErrOrderNotCreated = errors.New("order could not be stored")
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CustomerEmail string            `json:"customer_email"`
	CustomerName  string            `json:"customer_name"`
	Items         []models.CartItem `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

var stripTags = bluemonday.StrictPolicy()

// sanitize strips markup from customer supplied text.
func sanitize(s string) string {
	return strings.TrimSpace(stripTags.Sanitize(strings.TrimSpace(s)))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// isInputError reports whether err was caused by the request rather than the store.
func isInputError(err error) bool {
	return errors.Is(err, ErrIncompleteOrder) ||
		errors.Is(err, ErrUnknownProduct) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidSize)
}

// LoadOrder reads an order with its lines.
func LoadOrder(ctx context.Context, db *gorm.DB, id uint) (models.StoreOrder, error) {
	var order models.StoreOrder
	err := db.WithContext(ctx).Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).First(&order, id).Error
	return order, err
}

// -------- Core Logic --------

// PlaceOrder validates the cart against the catalog and stores the order with
// its lines in one transaction. Prices always come from the catalog.
func PlaceOrder(ctx context.Context, db *gorm.DB, req PlaceOrderRequest) (models.StoreOrder, error) {
	email := sanitize(req.CustomerEmail)
	name := sanitize(req.CustomerName)
	if email == "" || name == "" || len(req.Items) == 0 {
		return models.StoreOrder{}, ErrIncompleteOrder
	}

	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		if item.ID == 0 {
			return models.StoreOrder{}, fmt.Errorf("%w: missing product id", ErrUnknownProduct)
		}
		if item.Quantity <= 0 {
			return models.StoreOrder{}, fmt.Errorf("%w: product %d", ErrInvalidQuantity, item.ID)
		}
		if !models.ValidSize(item.SelectedSize) {
			return models.StoreOrder{}, fmt.Errorf("%w: %q", ErrInvalidSize, item.SelectedSize)
		}
		ids = append(ids, item.ID.Uint())
	}

	var products []models.StoreProduct
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return models.StoreOrder{}, fmt.Errorf("%w: %v", ErrOrderNotCreated, err)
	}
	catalog := make(map[uint]models.StoreProduct, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	var total float64
	items := make([]models.StoreOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		product, ok := catalog[item.ID.Uint()]
		if !ok {
			return models.StoreOrder{}, fmt.Errorf("%w: %d", ErrUnknownProduct, item.ID)
		}
		total += product.Price * float64(item.Quantity)
		items = append(items, models.StoreOrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
			Size:        item.SelectedSize,
		})
	}

	order := models.StoreOrder{
		CustomerEmail: email,
		CustomerName:  name,
		TotalAmount:   roundCents(total),
		Status:        models.StoreOrderPending,
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return models.StoreOrder{}, fmt.Errorf("%w: %v", ErrOrderNotCreated, err)
	}

	created, err := LoadOrder(ctx, db, order.ID)
	if err != nil {
		order.Items = items
		return order, nil
	}
	return created, nil
}

// -------- Handlers --------

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to create order. Data is incomplete."})
			return
		}

		order, err := PlaceOrder(c.Request.Context(), db, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrIncompleteOrder):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to create order. Data is incomplete."})
			case isInputError(err):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Unable to create order. " + err.Error()})
			default:
				c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Unable to create order"})
			}
			return
		}

		if hub != nil {
			hub.Broadcast(order)
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Order created successfully",
			"order_id": order.ID,
			"order":    order,
		})
	}
}

// GET /api/orders (?id= for a single order with its lines)
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if idParam := c.Query("id"); idParam != "" {
			id, err := strconv.ParseUint(idParam, 10, 64)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			order, err := LoadOrder(c.Request.Context(), db, uint(id))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve order"})
				return
			}
			c.JSON(http.StatusOK, order)
			return
		}

		var orders []models.StoreOrder
		if err := db.WithContext(c.Request.Context()).
			Order("created_at DESC").
			Order("id DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}
		if len(orders) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No orders found"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order ID"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
			return
		}
		newStatus, err := models.ParseStoreOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		result := db.WithContext(c.Request.Context()).Model(&models.StoreOrder{}).
			Where("id = ?", orderID).
			Update("status", newStatus)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		order, err := LoadOrder(c.Request.Context(), db, uint(orderID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve order"})
			return
		}
		if hub != nil {
			hub.Broadcast(order)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}
