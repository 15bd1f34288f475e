package performance

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dugoutlabs/diamond/internal/listctl"
	"github.com/dugoutlabs/diamond/internal/stats"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

// EntryController handles performance-entry HTTP requests
type EntryController struct {
	repo EntryRepository
}

// NewEntryController creates a new performance-entry controller
func NewEntryController(repo EntryRepository) *EntryController {
	return &EntryController{repo: repo}
}

// applyDerived computes batting average and ERA from the raw counting stats.
// When a guard fails the submitted value is kept untouched: an entry with 0
// innings pitched never gets an ERA, whatever was typed in the field.
func applyDerived(entry *Entry) {
	if avg, ok := stats.BattingAvg(entry.Hits, entry.AtBats); ok {
		entry.BattingAvg = fmt.Sprintf("%.3f", avg)
	}
	if era, ok := stats.ERA(entry.EarnedRuns, entry.InningsPitched); ok {
		entry.ERA = fmt.Sprintf("%.2f", era)
	}
}

// CreateEntry godoc
// @Summary Create a performance entry
// @Description Record raw counting stats. Batting average and ERA are computed server-side at submission.
// @Tags performance
// @Accept json
// @Produce json
// @Param entry body Entry true "Performance entry"
// @Success 201 {object} utils.DataResponse{data=Entry} "Entry created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance [post]
// @Security Bearer
func (c *EntryController) CreateEntry(ctx *gin.Context) {
	var entry Entry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	applyDerived(&entry)

	if err := c.repo.CreateEntry(&entry); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create performance entry: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusCreated, entry)
}

// GetAllEntries godoc
// @Summary List performance entries
// @Tags performance
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 10, max: 100)"
// @Param player_id query int false "Filter by player"
// @Param opponent query string false "Filter by opponent (partial match)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Entry} "List of entries"
// @Failure 400 {object} utils.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance [get]
func (c *EntryController) GetAllEntries(ctx *gin.Context) {
	params, err := listctl.BindParams(ctx)
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusBadRequest, err)
		return
	}

	filters := make(map[string]interface{})

	if playerIDStr := ctx.Query("player_id"); playerIDStr != "" {
		playerID, err := strconv.ParseUint(playerIDStr, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid player_id parameter"})
			return
		}
		filters["player_id"] = uint(playerID)
	}

	if opponent := ctx.Query("opponent"); opponent != "" {
		filters["opponent"] = opponent
	}

	entries, totalCount, err := c.repo.GetAllEntries(params.Page, params.Limit, filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get performance entries: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, entries, params.Page, params.Limit, totalCount)
}

// GetEntryByID godoc
// @Summary Get a performance entry by ID
// @Tags performance
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Success 200 {object} utils.DataResponse{data=Entry} "Entry details"
// @Failure 400 {object} utils.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} utils.ErrorResponse "Entry not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance/{entry_id} [get]
func (c *EntryController) GetEntryByID(ctx *gin.Context) {
	entryID, err := strconv.ParseUint(ctx.Param("entry_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid entry ID"})
		return
	}

	entry, err := c.repo.GetEntryByID(uint(entryID))
	if err != nil {
		if err.Error() == "performance entry not found" {
			utils.NotFoundJSON(ctx, "performance entry")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get performance entry: " + err.Error()})
		}
		return
	}

	utils.DataJSON(ctx, http.StatusOK, entry)
}

// UpdateEntry godoc
// @Summary Update a performance entry
// @Description Replace the entry's raw stats. Derived stats are recomputed at submission.
// @Tags performance
// @Accept json
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Param entry body Entry true "Updated entry"
// @Success 200 {object} utils.DataResponse{data=Entry} "Entry updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Entry not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance/{entry_id} [put]
// @Security Bearer
func (c *EntryController) UpdateEntry(ctx *gin.Context) {
	entryID, err := strconv.ParseUint(ctx.Param("entry_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid entry ID"})
		return
	}

	entry, err := c.repo.GetEntryByID(uint(entryID))
	if err != nil {
		if err.Error() == "performance entry not found" {
			utils.NotFoundJSON(ctx, "performance entry")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get performance entry: " + err.Error()})
		}
		return
	}

	if err := ctx.ShouldBindJSON(entry); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	applyDerived(entry)

	if err := c.repo.UpdateEntry(entry); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update performance entry: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusOK, entry)
}

// DeleteEntry godoc
// @Summary Delete a performance entry
// @Tags performance
// @Produce json
// @Param entry_id path int true "Entry ID"
// @Success 200 {object} utils.SuccessResponse "Entry deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid entry ID"
// @Failure 404 {object} utils.ErrorResponse "Entry not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance/{entry_id} [delete]
// @Security Bearer
func (c *EntryController) DeleteEntry(ctx *gin.Context) {
	entryID, err := strconv.ParseUint(ctx.Param("entry_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid entry ID"})
		return
	}

	if err := c.repo.DeleteEntry(uint(entryID)); err != nil {
		if err.Error() == "performance entry not found" {
			utils.NotFoundJSON(ctx, "performance entry")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete performance entry: " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "performance entry deleted successfully", nil)
}

// BulkDeleteEntries godoc
// @Summary Bulk delete performance entries
// @Tags performance
// @Accept json
// @Produce json
// @Param ids body object true "Ids to delete" SchemaExample({"ids":[1,2,3]})
// @Success 200 {object} utils.BulkDeleteResponse "Rows actually deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /performance/bulk-delete [post]
// @Security Bearer
func (c *EntryController) BulkDeleteEntries(ctx *gin.Context) {
	var input struct {
		IDs []uint `json:"ids" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	deleted, err := c.repo.BulkDeleteEntries(input.IDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete performance entries: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, utils.BulkDeleteResponse{DeletedCount: deleted})
}
