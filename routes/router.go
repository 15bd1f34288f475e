package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/dugoutlabs/diamond/config"
	"github.com/dugoutlabs/diamond/internal/account"
	"github.com/dugoutlabs/diamond/internal/location"
	"github.com/dugoutlabs/diamond/internal/performance"
	"github.com/dugoutlabs/diamond/internal/roster"
	"github.com/dugoutlabs/diamond/internal/schedule"
	"github.com/dugoutlabs/diamond/internal/template"
	"github.com/dugoutlabs/diamond/pkg/cache"
	"github.com/dugoutlabs/diamond/pkg/ids"
)

func SetupRoutes(db *gorm.DB, appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Diamond</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Diamond API ⚾</h1>
					<p><a href="/swagger/index.html">swagger</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Shared services
	cacheSvc := cache.NewService(appConfig.Cache.TTL, appConfig.Cache.CleanupInterval)
	drafts := schedule.NewDraftStore()
	idp := ids.NewUUIDProvider()
	defaults := account.NewDraftDefaults(account.NewAccountRepository(db))

	// API routes
	api := r.Group("/api")
	account.AccountRoutes(api, db, appConfig)
	schedule.ScheduleRoutes(api, db, appConfig, drafts, idp)
	template.TemplateRoutes(api, db, appConfig, cacheSvc, drafts, defaults, idp)
	roster.RosterRoutes(api, db, appConfig)
	performance.PerformanceRoutes(api, db, appConfig)
	location.LocationRoutes(api, db, appConfig, cacheSvc)

	return r
}
