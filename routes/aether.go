package routes

import (
	"github.com/gin-gonic/gin"
	storeControllers "github.com/junaidrashid-git/orbit-aether/controllers/store"
	"github.com/junaidrashid-git/orbit-aether/config"
	"gorm.io/gorm"
)

// SetupAetherRoutes registers the storefront API under /api.
func SetupAetherRoutes(r *gin.Engine, db *gorm.DB, cfg config.AetherConfig, hub *storeControllers.Hub) {
	api := r.Group("/api")
	{
		api.GET("", storeControllers.Index)
		api.GET("/", storeControllers.Index)
		api.GET("/index.php", storeControllers.Index)

		for _, path := range []string{"/products", "/products.php"} {
			api.GET(path, storeControllers.GetProducts(db))
		}

		SetupOrderRoutes(api, db, hub, cfg.AdminAPIKey)

		for _, path := range []string{"/newsletter", "/newsletter.php"} {
			api.POST(path, storeControllers.Subscribe(db))
			api.GET(path, storeControllers.GetSubscribers(db))
			api.DELETE(path, storeControllers.Unsubscribe(db))
		}
	}
}
