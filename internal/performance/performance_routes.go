package performance

import (
	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PerformanceRoutes sets up all performance-entry routes
func PerformanceRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewEntryRepository(db)
	controller := NewEntryController(repo)

	router.GET("/performance", controller.GetAllEntries)
	router.GET("/performance/:entry_id", controller.GetEntryByID)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authRoutes.POST("/performance", controller.CreateEntry)
		authRoutes.PUT("/performance/:entry_id", controller.UpdateEntry)
		authRoutes.DELETE("/performance/:entry_id", controller.DeleteEntry)
		authRoutes.POST("/performance/bulk-delete", controller.BulkDeleteEntries)
	}
}
