package controllers

import (
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	"github.com/Ramyash8/hotel-reservation-system2/response"
	"github.com/Ramyash8/hotel-reservation-system2/services"
	"github.com/Ramyash8/hotel-reservation-system2/validator"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	user, err := ctl.users.CreateUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, user)
}

// Login checks credentials and returns the user. No session or token is issued.
func (ctl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := validator.ValidateLogin(&req); err != nil {
		_ = c.Error(err)
		return
	}
	user, err := ctl.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, user)
}

func (ctl *UserController) GetUser(c *gin.Context) {
	user, err := ctl.users.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, user)
}
