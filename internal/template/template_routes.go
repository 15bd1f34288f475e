package template

import (
	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/internal/schedule"
	"github.com/dugoutlabs/diamond/pkg/cache"
	"github.com/dugoutlabs/diamond/pkg/ids"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TemplateRoutes sets up all schedule-template routes
func TemplateRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, cacheSvc *cache.Service, drafts *schedule.DraftStore, defaults DefaultsProvider, idp ids.Provider) {
	repo := NewTemplateRepository(db)
	controller := NewTemplateController(repo, cacheSvc, drafts, defaults, idp, appConfig)

	router.GET("/schedule-templates", controller.ListTemplates)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authRoutes.POST("/schedule-templates", controller.CreateTemplate)
		authRoutes.PUT("/schedule-templates/:template_id", controller.UpdateTemplate)
		authRoutes.DELETE("/schedule-templates/:template_id", controller.DeleteTemplate)
		authRoutes.POST("/schedule-templates/:template_id/duplicate", controller.DuplicateTemplate)
		authRoutes.POST("/schedule-templates/:template_id/load", controller.LoadTemplate)
	}
}
