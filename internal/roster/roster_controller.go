package roster

import (
	"net/http"
	"strconv"

	"github.com/dugoutlabs/diamond/internal/listctl"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

// Controller serves the standard entity surface: paginated+filtered list,
// single get, create, update, delete, bulk delete. Every roster page in the
// app is one instantiation of this type with its own Schema.
type Controller[T any] struct {
	repo   *Repository[T]
	schema Schema
}

// NewController creates a controller for one entity type.
func NewController[T any](repo *Repository[T], schema Schema) *Controller[T] {
	return &Controller[T]{repo: repo, schema: schema}
}

// BulkDeleteInput is the payload for a bulk delete
type BulkDeleteInput struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// List serves GET /<entity> with pagination, search, and schema filters.
func (c *Controller[T]) List(ctx *gin.Context) {
	params, err := listctl.BindParams(ctx)
	if err != nil {
		utils.ErrorJSON(ctx, http.StatusBadRequest, err)
		return
	}

	filters := make(map[string]string)
	for key := range c.schema.Filters {
		if value := ctx.Query(key); value != "" {
			filters[key] = value
		}
	}

	items, totalCount, err := c.repo.List(params.Page, params.Limit, ctx.Query("search"), filters)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get " + c.schema.Name + " list: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, items, params.Page, params.Limit, totalCount)
}

// Get serves GET /<entity>/:id.
func (c *Controller[T]) Get(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid " + c.schema.Name + " ID"})
		return
	}

	item, err := c.repo.GetByID(uint(id))
	if err != nil {
		if err.Error() == c.schema.Name+" not found" {
			utils.NotFoundJSON(ctx, c.schema.Name)
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get " + c.schema.Name + ": " + err.Error()})
		}
		return
	}

	utils.DataJSON(ctx, http.StatusOK, item)
}

// Create serves POST /<entity>.
func (c *Controller[T]) Create(ctx *gin.Context) {
	var item T
	if err := ctx.ShouldBindJSON(&item); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	if err := c.repo.Create(&item); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create " + c.schema.Name + ": " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusCreated, item)
}

// Update serves PUT /<entity>/:id. The incoming body is bound over the stored
// row, so omitted fields keep their current values.
func (c *Controller[T]) Update(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid " + c.schema.Name + " ID"})
		return
	}

	item, err := c.repo.GetByID(uint(id))
	if err != nil {
		if err.Error() == c.schema.Name+" not found" {
			utils.NotFoundJSON(ctx, c.schema.Name)
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get " + c.schema.Name + ": " + err.Error()})
		}
		return
	}

	if err := ctx.ShouldBindJSON(item); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	if err := c.repo.Update(item); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update " + c.schema.Name + ": " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusOK, item)
}

// Delete serves DELETE /<entity>/:id.
func (c *Controller[T]) Delete(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid " + c.schema.Name + " ID"})
		return
	}

	if err := c.repo.Delete(uint(id)); err != nil {
		if err.Error() == c.schema.Name+" not found" {
			utils.NotFoundJSON(ctx, c.schema.Name)
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete " + c.schema.Name + ": " + err.Error()})
		}
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, c.schema.Name+" deleted successfully", nil)
}

// BulkDelete serves POST /<entity>/bulk-delete. The response carries the
// number of rows actually removed, which can be below len(ids) when some rows
// were already gone.
func (c *Controller[T]) BulkDelete(ctx *gin.Context) {
	var input BulkDeleteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	deleted, err := c.repo.BulkDelete(input.IDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete " + c.schema.Name + " list: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, utils.BulkDeleteResponse{DeletedCount: deleted})
}
