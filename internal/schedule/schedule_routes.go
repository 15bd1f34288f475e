package schedule

import (
	"github.com/dugoutlabs/diamond/config"
	mw "github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/pkg/ids"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ScheduleRoutes sets up all schedule-related routes
func ScheduleRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, drafts *DraftStore, idp ids.Provider) {
	repo := NewScheduleRepository(db)
	controller := NewScheduleController(repo, drafts, idp, appConfig)

	// Public reads
	router.GET("/schedules", controller.GetAllSchedules)
	router.GET("/schedules/skeleton", controller.GetSkeleton)
	router.GET("/schedules/time-slots", controller.GetTimeSlots)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.Secret))
	{
		// The draft slot is read-once, so it must sit behind auth and before
		// the :schedule_id match below.
		authRoutes.GET("/schedules/draft", controller.GetDraft)
		authRoutes.POST("/schedules", controller.CreateSchedule)
		authRoutes.DELETE("/schedules/:schedule_id", controller.DeleteSchedule)
	}

	router.GET("/schedules/:schedule_id", controller.GetScheduleByID)
}
