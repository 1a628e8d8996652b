package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 201 {object} response_models.UserResponse
// @Failure 400 {object} map[string]interface{}
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseSignUp(body, "register")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, "User registered successfully", "user", user)
}

// Login godoc
// @Summary Exchange an email or user name and password for an access token
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseLogin(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, "Login successful", "access_token", token)
}

func (a *AccountController) GetProfile(c *gin.Context) {
	user, err := a.accountService.GetProfile(c.Request.Context(), subjectOf(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Profile retrieved successfully", "user", user)
}

func (a *AccountController) UpdateProfile(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseProfileUpdate(body)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := a.accountService.UpdateProfile(c.Request.Context(), subjectOf(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Profile updated successfully", "user", user)
}
