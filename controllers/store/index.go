package storeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	Path        string            `json:"path"`
	Methods     []string          `json:"methods"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters,omitempty"`
	Body        map[string]string `json:"body,omitempty"`
}

type APIInfo struct {
	Name          string     `json:"name"`
	Version       string     `json:"version"`
	Description   string     `json:"description"`
	Endpoints     []Endpoint `json:"endpoints"`
	Documentation string     `json:"documentation"`
}

var apiInfo = APIInfo{
	Name:        "Aether E-commerce API",
	Version:     "1.0.0",
	Description: "RESTful API for Aether Modern Apparel e-commerce platform",
	Endpoints: []Endpoint{
		{
			Path:        "/api/products",
			Methods:     []string{"GET"},
			Description: "Get all products, single product by ID, or filter by category",
			Parameters: map[string]string{
				"id":       "Product ID (optional)",
				"category": "Product category (optional)",
			},
		},
		{
			Path:        "/api/orders",
			Methods:     []string{"GET", "POST"},
			Description: "Create new order or get orders",
			Parameters: map[string]string{
				"id": "Order ID for GET requests (optional)",
			},
			Body: map[string]string{
				"customer_email": "Customer email address",
				"customer_name":  "Customer name",
				"items":          "Array of cart items with id, quantity, selectedSize",
			},
		},
		{
			Path:        "/api/orders/:id/status",
			Methods:     []string{"PUT"},
			Description: "Move an order to another fulfilment status",
			Body: map[string]string{
				"status": "pending, confirmed, ready_to_ship, shipped, delivered, returned or cancelled",
			},
		},
		{
			Path:        "/api/orders/ws",
			Methods:     []string{"GET"},
			Description: "Websocket stream of created and updated orders",
		},
		{
			Path:        "/api/newsletter",
			Methods:     []string{"GET", "POST", "DELETE"},
			Description: "Manage newsletter subscriptions",
			Body: map[string]string{
				"email": "Email address",
			},
		},
	},
	Documentation: "See README.md for detailed API documentation",
}

// GET /api
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, apiInfo)
}
