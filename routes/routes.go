package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	storeControllers "github.com/junaidrashid-git/orbit-aether/controllers/store"
	"github.com/junaidrashid-git/orbit-aether/config"
	"github.com/junaidrashid-git/orbit-aether/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const healthTimeout = 5 * time.Second

// newEngine builds the gin engine shared by both apps: recovery, request
// logging, metrics, wide-open CORS, /health and /metrics. errorKey is the JSON
// key the app reports errors under.
func newEngine(app string, db *gorm.DB, log *zap.Logger, errorKey string) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	metrics := middleware.NewMetrics(app)
	r.Use(
		middleware.RequestLogger(log.With(zap.String("app", app))),
		metrics.Middleware(),
		gin.Recovery(),
	)

	// Allow large spreadsheet uploads
	r.MaxMultipartMemory = 32 << 20

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.APIKeyHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{errorKey: "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{errorKey: "Method not allowed"})
	})

	r.GET("/health", health(db))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	return r
}

// health pings the database.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// NewOrbitRouter returns the back-office API.
func NewOrbitRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) *gin.Engine {
	r := newEngine("orbit", db, log, "error")

	SetupAuthRoutes(r, db, cfg.JWT)
	SetupOrbitRoutes(r, db, cfg)
	return r
}

// NewAetherRouter returns the storefront API. hub receives every created or
// updated order.
func NewAetherRouter(db *gorm.DB, cfg *config.Config, hub *storeControllers.Hub, log *zap.Logger) *gin.Engine {
	r := newEngine("aether", db, log, "message")

	SetupAetherRoutes(r, db, cfg.Aether, hub)
	return r
}
