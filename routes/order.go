package routes

import (
	"github.com/gin-gonic/gin"
	storeControllers "github.com/junaidrashid-git/orbit-aether/controllers/store"
	"github.com/junaidrashid-git/orbit-aether/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the storefront order endpoints under api. Status
// changes need adminKey when one is configured.
func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB, hub *storeControllers.Hub, adminKey string) {
	for _, path := range []string{"/orders", "/orders.php"} {
		// Checkout
		api.POST(path, storeControllers.PlaceOrderHandler(db, hub))

		// List orders, or one order with ?id=
		api.GET(path, storeControllers.GetOrdersHandler(db))
	}

	orders := api.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", hub.ServeWS)

		// Update order status (e.g., shipped, cancelled)
		orders.PUT("/:id/status", middleware.ValidateAPIKey(adminKey), storeControllers.UpdateOrderStatusHandler(db, hub))
	}
}
