package location

import (
	"log"

	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/pkg/cache"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LocationRoutes sets up all location routes
func LocationRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cacheSvc *cache.Service) {
	repo := NewLocationRepository(db)
	controller := NewLocationController(repo, cacheSvc, appConfig)

	if err := repo.SeedDefaults(); err != nil {
		log.Printf("failed to seed default locations: %v", err)
	}

	router.GET("/locations", controller.ListLocations)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authRoutes.POST("/locations", controller.CreateLocation)
	}
}
