package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderdex/internal/models/request_models"
	"wanderdex/internal/services"
	"wanderdex/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{userService: userService}
}

func (u *UserController) ListUsers(c *gin.Context) {
	users, err := u.userService.ListUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "Users retrieved successfully", "users", users)
}

func (u *UserController) AddUser(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	req, err := request_models.ParseSignUp(body, "adding user")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	user, err := u.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, "User added successfully", "user", user)
}

// DeleteUser removes the user named by :user_name along with their lists.
func (u *UserController) DeleteUser(c *gin.Context) {
	if err := u.userService.DeleteUser(c.Request.Context(), c.Param("user_name")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, "User deleted successfully", "", nil)
}
