package location

import (
	"net/http"
	"strings"

	"github.com/dugoutlabs/diamond/config"
	"github.com/dugoutlabs/diamond/pkg/cache"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

const locationListCacheKey = "locations:list"

// LocationController handles location HTTP requests
type LocationController struct {
	repo      LocationRepository
	cache     *cache.Service
	appConfig *config.Config
}

// NewLocationController creates a new location controller
func NewLocationController(repo LocationRepository, cacheSvc *cache.Service, appConfig *config.Config) *LocationController {
	return &LocationController{
		repo:      repo,
		cache:     cacheSvc,
		appConfig: appConfig,
	}
}

// LocationInput is the payload for adding a location
type LocationInput struct {
	Name string `json:"name" binding:"required"`
}

// ListLocations godoc
// @Summary List activity locations
// @Tags locations
// @Produce json
// @Success 200 {object} utils.DataResponse{data=[]Location} "Locations"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /locations [get]
func (c *LocationController) ListLocations(ctx *gin.Context) {
	if cached, found := c.cache.Get(locationListCacheKey); found {
		utils.DataJSON(ctx, http.StatusOK, cached)
		return
	}

	locations, err := c.repo.ListLocations()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get locations: " + err.Error()})
		return
	}
	if locations == nil {
		locations = []Location{}
	}

	c.cache.Set(locationListCacheKey, locations, c.appConfig.Cache.TTL)
	utils.DataJSON(ctx, http.StatusOK, locations)
}

// CreateLocation godoc
// @Summary Add an activity location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body LocationInput true "Location"
// @Success 201 {object} utils.DataResponse{data=Location} "Location created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /locations [post]
// @Security Bearer
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var input LocationInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		utils.BadRequestJSON(ctx, "Please enter a location name")
		return
	}

	loc := &Location{Name: name}
	if err := c.repo.CreateLocation(loc); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create location: " + err.Error()})
		return
	}

	c.cache.Delete(locationListCacheKey)
	utils.DataJSON(ctx, http.StatusCreated, loc)
}
