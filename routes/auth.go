package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/auth"
	"github.com/junaidrashid-git/orbit-aether/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public login endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, jwtCfg config.JWTConfig) {
	login := auth.Login(db, jwtCfg)

	r.POST("/auth", login)
	r.POST("/auth.php", login)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", login) // POST /auth/login
	}
}
