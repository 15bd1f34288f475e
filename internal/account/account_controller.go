package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/dugoutlabs/diamond/config"
	"github.com/dugoutlabs/diamond/internal/middleware"
	"github.com/dugoutlabs/diamond/internal/template"
	"github.com/dugoutlabs/diamond/pkg/token"
	"github.com/dugoutlabs/diamond/pkg/utils"
	"github.com/dugoutlabs/diamond/pkg/validator"
	"github.com/gin-gonic/gin"
)

// AccountController handles account and team-settings HTTP requests
type AccountController struct {
	repo      AccountRepository
	appConfig *config.Config
}

// NewAccountController creates a new account controller
func NewAccountController(repo AccountRepository, appConfig *config.Config) *AccountController {
	return &AccountController{
		repo:      repo,
		appConfig: appConfig,
	}
}

// Register godoc
// @Summary Create an account
// @Tags account
// @Accept json
// @Produce json
// @Param account body RegisterInput true "Account details"
// @Success 201 {object} utils.DataResponse{data=User} "Account created"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AccountController) Register(ctx *gin.Context) {
	var input RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create account: " + err.Error()})
		return
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		TeamID:       input.TeamID,
	}
	if err := c.repo.CreateUser(user); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create account: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusCreated, user)
}

// Login godoc
// @Summary Sign in
// @Tags account
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} utils.SuccessResponse "Access token"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AccountController) Login(ctx *gin.Context) {
	var input LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	user, err := c.repo.GetUserByEmail(input.Email)
	if err != nil || !checkPassword(user.PasswordHash, input.Password) {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "invalid email or password"})
		return
	}

	accessToken, err := token.GenerateJWT(user.ID, user.Role, c.appConfig.JWT.Secret, c.appConfig.JWT.ExpiryMinutes)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to sign token: " + err.Error()})
		return
	}

	utils.SuccessJSON(ctx, http.StatusOK, "login successful", gin.H{"access_token": accessToken})
}

// GetProfile godoc
// @Summary Get the signed-in account
// @Tags account
// @Produce json
// @Success 200 {object} utils.DataResponse{data=User} "Account"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
// @Security Bearer
func (c *AccountController) GetProfile(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	user, err := c.repo.GetUserByID(userID)
	if err != nil {
		if err.Error() == "user not found" {
			utils.NotFoundJSON(ctx, "user")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get account: " + err.Error()})
		}
		return
	}

	utils.DataJSON(ctx, http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary Update account settings
// @Tags account
// @Accept json
// @Produce json
// @Param profile body ProfileInput true "Profile changes"
// @Success 200 {object} utils.DataResponse{data=User} "Account updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Router /auth/me [put]
// @Security Bearer
func (c *AccountController) UpdateProfile(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	var input ProfileInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	user, err := c.repo.GetUserByID(userID)
	if err != nil {
		utils.NotFoundJSON(ctx, "user")
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.TeamID != 0 {
		user.TeamID = input.TeamID
	}

	if err := c.repo.UpdateUser(user); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update account: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusOK, user)
}

// GetTeamSettings godoc
// @Summary Get the signed-in user's team settings
// @Tags account
// @Produce json
// @Success 200 {object} utils.DataResponse{data=Team} "Team settings"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /account/team [get]
// @Security Bearer
func (c *AccountController) GetTeamSettings(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	user, err := c.repo.GetUserByID(userID)
	if err != nil {
		utils.NotFoundJSON(ctx, "user")
		return
	}

	team, err := c.repo.GetTeamByID(user.TeamID)
	if err != nil {
		if err.Error() == "team not found" {
			utils.NotFoundJSON(ctx, "team")
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get team: " + err.Error()})
		}
		return
	}

	utils.DataJSON(ctx, http.StatusOK, team)
}

// UpdateTeamSettings godoc
// @Summary Update the signed-in user's team settings
// @Tags account
// @Accept json
// @Produce json
// @Param team body TeamInput true "Team changes"
// @Success 200 {object} utils.DataResponse{data=Team} "Team updated"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 401 {object} utils.ErrorResponse "Unauthorized"
// @Failure 404 {object} utils.ErrorResponse "Team not found"
// @Router /account/team [put]
// @Security Bearer
func (c *AccountController) UpdateTeamSettings(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		utils.UnauthorizedJSON(ctx)
		return
	}

	var input TeamInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		utils.ValidationErrorJSON(ctx, "Validation failed", validator.ParseError(err))
		return
	}

	user, err := c.repo.GetUserByID(userID)
	if err != nil {
		utils.NotFoundJSON(ctx, "user")
		return
	}

	team, err := c.repo.GetTeamByID(user.TeamID)
	if err != nil {
		utils.NotFoundJSON(ctx, "team")
		return
	}

	team.Name = input.Name
	team.Program = input.Program
	team.Motto = input.Motto

	if err := c.repo.UpdateTeam(team); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update team: " + err.Error()})
		return
	}

	utils.DataJSON(ctx, http.StatusOK, team)
}

// draftDefaults resolves the session defaults a loaded template draft starts
// from: the user's team, the team's program label, and today's date.
type draftDefaults struct {
	repo AccountRepository
}

// NewDraftDefaults returns a template.DefaultsProvider backed by the account store.
func NewDraftDefaults(repo AccountRepository) template.DefaultsProvider {
	return &draftDefaults{repo: repo}
}

func (p *draftDefaults) DraftDefaultsFor(userID uint) (template.DraftDefaults, error) {
	user, err := p.repo.GetUserByID(userID)
	if err != nil {
		return template.DraftDefaults{}, err
	}
	if user.TeamID == 0 {
		return template.DraftDefaults{}, errors.New("user has no team")
	}

	team, err := p.repo.GetTeamByID(user.TeamID)
	if err != nil {
		return template.DraftDefaults{}, err
	}

	program := team.Program
	if program == "" {
		program = team.Name
	}

	now := time.Now()
	return template.DraftDefaults{
		TeamID:      team.ID,
		ProgramName: program,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}, nil
}
