package roster

import (
	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerSchema describes the players page.
var PlayerSchema = Schema{
	Name:          "player",
	Path:          "players",
	SearchColumns: []string{"first_name", "last_name", "school"},
	Filters: map[string]string{
		"position":  "position",
		"grad_year": "grad_year",
		"state":     "state",
		"team_id":   "team_id",
	},
}

// CoachSchema describes the coaches page.
var CoachSchema = Schema{
	Name:          "coach",
	Path:          "coaches",
	SearchColumns: []string{"first_name", "last_name"},
	Filters: map[string]string{
		"title":   "title",
		"team_id": "team_id",
	},
}

// ScoutSchema describes the scouts page.
var ScoutSchema = Schema{
	Name:          "scout",
	Path:          "scouts",
	SearchColumns: []string{"first_name", "last_name", "organization"},
	Filters: map[string]string{
		"region": "region",
	},
}

// VendorSchema describes the vendors page.
var VendorSchema = Schema{
	Name:          "vendor",
	Path:          "vendors",
	SearchColumns: []string{"company", "contact_name"},
	Filters: map[string]string{
		"service": "service",
	},
}

// ScoutingReportSchema describes the scouting-reports page.
var ScoutingReportSchema = Schema{
	Name:          "scouting report",
	Path:          "reports/scouting",
	SearchColumns: []string{"summary"},
	Filters: map[string]string{
		"player_id":     "player_id",
		"scout_id":      "scout_id",
		"overall_grade": "overall_grade",
	},
}

// register wires the standard entity surface for one type.
func register[T any](public, protected *gin.RouterGroup, db *gorm.DB, schema Schema) {
	repo := NewRepository[T](db, schema)
	controller := NewController(repo, schema)

	public.GET("/"+schema.Path, controller.List)
	public.GET("/"+schema.Path+"/:id", controller.Get)

	protected.POST("/"+schema.Path, controller.Create)
	protected.PUT("/"+schema.Path+"/:id", controller.Update)
	protected.DELETE("/"+schema.Path+"/:id", controller.Delete)
	protected.POST("/"+schema.Path+"/bulk-delete", controller.BulkDelete)
}

// RosterRoutes sets up CRUD and bulk-delete routes for every roster entity
func RosterRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	protected := router.Group("/")
	protected.Use(mw.AuthMiddleware(appConfig.JWT.Secret))

	register[Player](router, protected, db, PlayerSchema)
	register[Coach](router, protected, db, CoachSchema)
	register[Scout](router, protected, db, ScoutSchema)
	register[Vendor](router, protected, db, VendorSchema)
	register[ScoutingReport](router, protected, db, ScoutingReportSchema)
}
