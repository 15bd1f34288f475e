package template

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dugoutlabs/diamond/config"
	"github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/internal/schedule"
	"github.com/dugoutlabs/diamond/pkg/cache"
	"github.com/dugoutlabs/diamond/pkg/ids"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

const templateListCacheKey = "schedule-templates:list"

// DefaultsProvider supplies the session defaults a loaded draft starts from.
type DefaultsProvider interface {
	DraftDefaultsFor(userID uint) (DraftDefaults, error)
}

// TemplateController handles schedule-template HTTP requests
type TemplateController struct {
	repo      TemplateRepository
	cache     *cache.Service
	drafts    *schedule.DraftStore
	defaults  DefaultsProvider
	idp       ids.Provider
	appConfig *config.Config
}

// NewTemplateController creates a new template controller
func NewTemplateController(repo TemplateRepository, cacheSvc *cache.Service, drafts *schedule.DraftStore, defaults DefaultsProvider, idp ids.Provider, appConfig *config.Config) *TemplateController {
	return &TemplateController{
		repo:      repo,
		cache:     cacheSvc,
		drafts:    drafts,
		defaults:  defaults,
		idp:       idp,
		appConfig: appConfig,
	}
}

// TemplateInput is the payload for creating or updating a template
type TemplateInput struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Sections    schedule.SectionList `json:"sections"`
}

// DuplicateInput carries the new identity for a duplicated template
type DuplicateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListTemplates godoc
// @Summary List schedule templates
// @Tags schedule-templates
// @Produce json
// @Success 200 {object} utils.DataResponse{data=[]Template} "Templates"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates [get]
func (c *TemplateController) ListTemplates(ctx *gin.Context) {
	if cached, found := c.cache.Get(templateListCacheKey); found {
		utils.DataJSON(ctx, http.StatusOK, cached)
		return
	}

	templates, err := c.repo.ListTemplates()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get templates: " + err.Error()})
		return
	}
	if templates == nil {
		templates = []Template{}
	}

	c.cache.Set(templateListCacheKey, templates, c.appConfig.Cache.TTL)
	utils.DataJSON(ctx, http.StatusOK, templates)
}

// CreateTemplate godoc
// @Summary Create a schedule template
// @Description Create a named template. With no sections given, the template starts from the base skeleton.
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param template body TemplateInput true "Template"
// @Success 201 {object} utils.DataResponse{data=Template} "Template created"
// @Failure 400 {object} utils.ErrorResponse "Validation error"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates [post]
// @Security Bearer
func (c *TemplateController) CreateTemplate(ctx *gin.Context) {
	var input TemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.BadRequestJSON(ctx, "Please enter a template name")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	sections := input.Sections
	if sections == nil {
		sections = schedule.BaseSkeleton(c.idp)
	}

	tpl := &Template{
		Name:         name,
		Description:  input.Description,
		TemplateData: sections,
		CreatorID:    userID,
	}
	if err := c.repo.CreateTemplate(tpl); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create template: " + err.Error()})
		return
	}

	c.cache.Delete(templateListCacheKey)
	utils.DataJSON(ctx, http.StatusCreated, tpl)
}

// UpdateTemplate godoc
// @Summary Update a schedule template
// @Description Replace a template's name, description and sections in full
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param template_id path int true "Template ID"
// @Param template body TemplateInput true "Updated template"
// @Success 200 {object} utils.DataResponse{data=Template} "Template updated"
// @Failure 400 {object} utils.ErrorResponse "Validation error"
// @Failure 404 {object} utils.ErrorResponse "Template not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates/{template_id} [put]
// @Security Bearer
func (c *TemplateController) UpdateTemplate(ctx *gin.Context) {
	templateID, err := strconv.ParseUint(ctx.Param("template_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid template ID"})
		return
	}

	var input TemplateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.BadRequestJSON(ctx, "Please enter a template name")
		return
	}

	tpl, err := c.repo.GetTemplateByID(uint(templateID))
	if err != nil {
		if err.Error() == "template not found" {
			utils.NotFoundJSON(ctx, "template")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get template: " + err.Error()})
		}
		return
	}

	tpl.Name = name
	tpl.Description = input.Description
	tpl.TemplateData = input.Sections
	if tpl.TemplateData == nil {
		tpl.TemplateData = schedule.SectionList{}
	}

	if err := c.repo.UpdateTemplate(tpl); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update template: " + err.Error()})
		return
	}

	c.cache.Delete(templateListCacheKey)
	utils.DataJSON(ctx, http.StatusOK, tpl)
}

// DuplicateTemplate godoc
// @Summary Duplicate a schedule template
// @Description Deep-copy an existing template under a new name. The copy is performed server-side.
// @Tags schedule-templates
// @Accept json
// @Produce json
// @Param template_id path int true "Template ID"
// @Param identity body DuplicateInput true "New template identity"
// @Success 201 {object} utils.DataResponse{data=Template} "Template duplicated"
// @Failure 400 {object} utils.ErrorResponse "Validation error"
// @Failure 404 {object} utils.ErrorResponse "Template not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates/{template_id}/duplicate [post]
// @Security Bearer
func (c *TemplateController) DuplicateTemplate(ctx *gin.Context) {
	templateID, err := strconv.ParseUint(ctx.Param("template_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid template ID"})
		return
	}

	var input DuplicateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.BadRequestJSON(ctx, "Please enter a template name")
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	dup, err := c.repo.DuplicateTemplate(uint(templateID), name, input.Description, userID)
	if err != nil {
		if err.Error() == "template not found" {
			utils.NotFoundJSON(ctx, "template")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to duplicate template: " + err.Error()})
		}
		return
	}

	c.cache.Delete(templateListCacheKey)
	utils.DataJSON(ctx, http.StatusCreated, dup)
}

// DeleteTemplate godoc
// @Summary Delete a schedule template
// @Tags schedule-templates
// @Produce json
// @Param template_id path int true "Template ID"
// @Success 200 {object} utils.SuccessResponse "Template deleted"
// @Failure 400 {object} utils.ErrorResponse "Invalid template ID"
// @Failure 404 {object} utils.ErrorResponse "Template not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates/{template_id} [delete]
// @Security Bearer
func (c *TemplateController) DeleteTemplate(ctx *gin.Context) {
	templateID, err := strconv.ParseUint(ctx.Param("template_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid template ID"})
		return
	}

	if err := c.repo.DeleteTemplate(uint(templateID)); err != nil {
		if err.Error() == "template not found" {
			utils.NotFoundJSON(ctx, "template")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete template: " + err.Error()})
		}
		return
	}

	c.cache.Delete(templateListCacheKey)
	utils.SuccessJSON(ctx, http.StatusOK, "Template deleted successfully", nil)
}

// LoadTemplate godoc
// @Summary Load a template into a draft schedule
// @Description Copies the template's sections into a single-use draft for the caller. The draft is consumed by GET /schedules/draft.
// @Tags schedule-templates
// @Produce json
// @Param template_id path int true "Template ID"
// @Success 200 {object} utils.SuccessResponse{data=schedule.Document} "Draft parked for pickup"
// @Failure 400 {object} utils.ErrorResponse "Invalid template ID"
// @Failure 404 {object} utils.ErrorResponse "Template not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /schedule-templates/{template_id}/load [post]
// @Security Bearer
func (c *TemplateController) LoadTemplate(ctx *gin.Context) {
	templateID, err := strconv.ParseUint(ctx.Param("template_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid template ID"})
		return
	}

	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	tpl, err := c.repo.GetTemplateByID(uint(templateID))
	if err != nil {
		if err.Error() == "template not found" {
			utils.NotFoundJSON(ctx, "template")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get template: " + err.Error()})
		}
		return
	}

	defaults, err := c.defaults.DraftDefaultsFor(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to resolve session defaults: " + err.Error()})
		return
	}

	draft := LoadIntoDraft(*tpl, defaults, c.idp)
	c.drafts.Put(userID, draft)

	utils.SuccessJSON(ctx, http.StatusOK, "Template loaded into draft", draft)
}
