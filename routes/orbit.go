package routes

import (
	"github.com/gin-gonic/gin"
	clientControllers "github.com/junaidrashid-git/orbit-aether/controllers/client"
	dashboardControllers "github.com/junaidrashid-git/orbit-aether/controllers/dashboard"
	orderControllers "github.com/junaidrashid-git/orbit-aether/controllers/order"
	productControllers "github.com/junaidrashid-git/orbit-aether/controllers/product"
	supplierControllers "github.com/junaidrashid-git/orbit-aether/controllers/supplier"
	taskControllers "github.com/junaidrashid-git/orbit-aether/controllers/task"
	teamControllers "github.com/junaidrashid-git/orbit-aether/controllers/team"
	userControllers "github.com/junaidrashid-git/orbit-aether/controllers/user"
	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/middleware"
	"gorm.io/gorm"
)

type crudHandlers struct {
	list, create, update, remove gin.HandlerFunc
}

// registerResource mounts a resource at /name, /name.php and /name/:id.
func registerResource(g *gin.RouterGroup, name string, h crudHandlers) {
	for _, path := range []string{"/" + name, "/" + name + ".php"} {
		g.GET(path, h.list)
		g.POST(path, h.create)
		g.PUT(path, h.update)
		g.DELETE(path, h.remove)
	}
	g.PUT("/"+name+"/:id", h.update)
	g.DELETE("/"+name+"/:id", h.remove)
}

// SetupOrbitRoutes registers the back-office resources. They require a bearer
// token unless cfg.Orbit.AuthRequired is off.
func SetupOrbitRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/")
	if cfg.Orbit.AuthRequired {
		api.Use(middleware.ValidateToken(cfg.JWT.Secret))
	}
	{
		// ──────────────── CRM ────────────────
		registerResource(api, "clients", crudHandlers{
			list:   clientControllers.GetClients(db),
			create: clientControllers.CreateClient(db),
			update: clientControllers.UpdateClient(db),
			remove: clientControllers.DeleteClient(db),
		})
		registerResource(api, "suppliers", crudHandlers{
			list:   supplierControllers.GetSuppliers(db),
			create: supplierControllers.CreateSupplier(db),
			update: supplierControllers.UpdateSupplier(db),
			remove: supplierControllers.DeleteSupplier(db),
		})

		// ──────────────── Sales ────────────────
		registerResource(api, "orders", crudHandlers{
			list:   orderControllers.GetOrders(db),
			create: orderControllers.CreateOrder(db),
			update: orderControllers.UpdateOrder(db),
			remove: orderControllers.DeleteOrder(db),
		})

		// ──────────────── Inventory ────────────────
		api.GET("/products/export", productControllers.ExportProductsToExcel(db))  // GET /products/export
		api.POST("/products/import", productControllers.ImportProductsFromExcel(db)) // POST /products/import
		api.GET("/products/:id", productControllers.GetProductByID(db))
		registerResource(api, "products", crudHandlers{
			list:   productControllers.GetProducts(db),
			create: productControllers.CreateProduct(db),
			update: productControllers.UpdateProduct(db),
			remove: productControllers.DeleteProduct(db),
		})

		// ──────────────── Team & Kanban ────────────────
		registerResource(api, "team", crudHandlers{
			list:   teamControllers.GetMembers(db),
			create: teamControllers.CreateMember(db, cfg.Orbit.DefaultPassword),
			update: teamControllers.UpdateMember(db),
			remove: teamControllers.DeleteMember(db),
		})
		registerResource(api, "tasks", crudHandlers{
			list:   taskControllers.GetTasks(db),
			create: taskControllers.CreateTask(db),
			update: taskControllers.UpdateTask(db),
			remove: taskControllers.DeleteTask(db),
		})

		// ──────────────── Signed-in member ────────────────
		api.GET("/me", userControllers.GetProfile(db))    // GET /me
		api.PUT("/me", userControllers.UpdateProfile(db)) // PUT /me

		api.GET("/dashboard", dashboardControllers.GetStats(db))
		api.GET("/dashboard.php", dashboardControllers.GetStats(db))
	}
}
