package account

import (
	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountRoutes sets up all account and team-settings routes
func AccountRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	repo := NewAccountRepository(db)
	controller := NewAccountController(repo, appConfig)

	authPublic := router.Group("/auth")
	{
		authPublic.POST("/register", controller.Register)
		authPublic.POST("/login", controller.Login)
	}

	authProtected := router.Group("/auth")
	authProtected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		authProtected.GET("/me", controller.GetProfile)
		authProtected.PUT("/me", controller.UpdateProfile)
	}

	accountRoutes := router.Group("/account")
	accountRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		accountRoutes.GET("/team", controller.GetTeamSettings)
		accountRoutes.PUT("/team", controller.UpdateTeamSettings)
	}
}
