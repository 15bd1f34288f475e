package schedule

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dugoutlabs/diamond/config"
	"github.com/dugoutlabs/diamond/internal/listctl"
	"github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/pkg/ids"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ScheduleController handles schedule-related HTTP requests
type ScheduleController struct {
	repo      ScheduleRepository
	drafts    *DraftStore
	idp       ids.Provider
	appConfig *config.Config
}

// NewScheduleController creates a new schedule controller
func NewScheduleController(repo ScheduleRepository, drafts *DraftStore, idp ids.Provider, appConfig *config.Config) *ScheduleController {
	return &ScheduleController{
		repo:      repo,
		drafts:    drafts,
		idp:       idp,
		appConfig: appConfig,
	}
}

// ScheduleInput is the payload for persisting a schedule
type ScheduleInput struct {
	TeamID      uint        `json:"team_id"`
	ProgramName string      `json:"program_name"`
	Date        string      `json:"date" binding:"required"`
	Motto       string      `json:"motto"`
	Sections    SectionList `json:"sections"`
}

// CreateSchedule godoc
// @Summary Persist a schedule
// @Description Save a completed practice schedule for a team and date
// @Tags schedules
// @Accept json
// @Produce json
// @Param schedule body ScheduleInput true "Schedule document"
// @Success 201 {object} utils.DataResponse{data=Document} "Schedule created"
// @Failure 400 {object} utils.ErrorResponse "Validation error"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedules [post]
// @Security Bearer
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var input ScheduleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid date, expected YYYY-MM-DD"})
		return
	}

	doc := Document{
		TeamID:      input.TeamID,
		ProgramName: input.ProgramName,
		Date:        date,
		Motto:       input.Motto,
		Sections:    input.Sections,
	}
	if doc.Sections == nil {
		doc.Sections = SectionList{}
	}

	// Older clients may send unknown section types or omit localIds.
	for i := range doc.Sections {
		doc.Sections[i].Type = doc.Sections[i].Type.Normalize()
		if doc.Sections[i].LocalID == "" {
			doc.Sections[i].LocalID = c.idp.NewID()
		}
		for j := range doc.Sections[i].Activities {
			if doc.Sections[i].Activities[j].LocalID == "" {
				doc.Sections[i].Activities[j].LocalID = c.idp.NewID()
			}
		}
	}

	if err := doc.Validate(); err != nil {
		utils.ErrorJSON(ctx, http.StatusBadRequest, err)
		return
	}

	if err := c.repo.CreateSchedule(&doc); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create schedule: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusCreated, doc)
}

// GetAllSchedules godoc
// @Summary List schedules
// @Description Get a paginated list of schedules with optional filters
// @Tags schedules
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 10, max: 100)"
// @Param team_id query int false "Filter by team"
// @Param date_from query string false "Filter by start date (YYYY-MM-DD)"
// @Param date_to query string false "Filter by end date (YYYY-MM-DD)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Document} "List of schedules"
// @Failure 400 {object} utils.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	params, err := listctl.BindParams(ctx)
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusBadRequest, err)
		return
	}

	filters := make(map[string]interface{})

	if teamIDStr := ctx.Query("team_id"); teamIDStr != "" {
		teamID, err := strconv.ParseUint(teamIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid team_id parameter"})
			return
		}
		filters["team_id"] = uint(teamID)
	}

	if fromStr := ctx.Query("date_from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid date_from parameter"})
			return
		}
		filters["date_from"] = from
	}

	if toStr := ctx.Query("date_to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid date_to parameter"})
			return
		}
		filters["date_to"] = to
	}

	docs, totalCount, err := c.repo.GetAllSchedules(params.Page, params.Limit, filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get schedules: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, docs, params.Page, params.Limit, totalCount)
}

// GetScheduleByID godoc
// @Summary Get schedule by ID
// @Tags schedules
// @Produce json
// @Param schedule_id path int true "Schedule ID"
// @Success 200 {object} utils.DataResponse{data=Document} "Schedule details"
// @Failure 400 {object} utils.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} utils.ErrorResponse "Schedule not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedules/{schedule_id} [get]
func (c *ScheduleController) GetScheduleByID(ctx *gin.Context) {
	scheduleID, err := strconv.ParseUint(ctx.Param("schedule_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid schedule ID"})
		return
	}

	doc, err := c.repo.GetScheduleByID(uint(scheduleID))
	if err != nil {
		if err.Error() == "schedule not found" {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "schedule not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get schedule: " + err.Error()})
		}
		return
	}

	utils.DataJSON(ctx, http.StatusOK, doc)
}

// DeleteSchedule godoc
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Param schedule_id path int true "Schedule ID"
// @Success 200 {object} utils.SuccessResponse "Schedule deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} utils.ErrorResponse "Schedule not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedules/{schedule_id} [delete]
// @Security Bearer
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	scheduleID, err := strconv.ParseUint(ctx.Param("schedule_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid schedule ID"})
		return
	}

	if err := c.repo.DeleteSchedule(uint(scheduleID)); err != nil {
		if err.Error() == "schedule not found" {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "schedule not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete schedule: " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "Schedule deleted successfully", nil)
}

// GetDraft godoc
// @Summary Take the pending draft schedule
// @Description Returns the draft parked by a template load and clears it. A second call returns no draft.
// @Tags schedules
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=Document} "Pending draft, if any"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /schedules/draft [get]
// @Security Bearer
func (c *ScheduleController) GetDraft(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	doc, ok := c.drafts.Take(userID)
	if !ok {
		utils.SuccessJSON(ctx, http.StatusOK, "no draft pending", nil)
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "draft loaded", doc)
}

// GetSkeleton godoc
// @Summary Get the base schedule skeleton
// @Description Returns the eight standard sections with empty activity lists
// @Tags schedules
// @Produce json
// @Success 200 {object} utils.DataResponse{data=SectionList} "Base skeleton"
// @Router /schedules/skeleton [get]
func (c *ScheduleController) GetSkeleton(ctx *gin.Context) {
	utils.DataJSON(ctx, http.StatusOK, BaseSkeleton(c.idp))
}

// GetTimeSlots godoc
// @Summary Get the fixed activity time slots
// @Tags schedules
// @Produce json
// @Success 200 {object} utils.DataResponse{data=[]string} "Time slots"
// @Router /schedules/time-slots [get]
func (c *ScheduleController) GetTimeSlots(ctx *gin.Context) {
	utils.DataJSON(ctx, http.StatusOK, TimeSlots())
}
