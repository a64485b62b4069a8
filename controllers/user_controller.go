package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skathar/portfolio-backend/middleware"
	"github.com/skathar/portfolio-backend/models"
	"github.com/skathar/portfolio-backend/repository"
	"github.com/skathar/portfolio-backend/utils"
)

type UserController struct {
	Users     *repository.UserRepo
	JWTSecret string
}

func NewUserController(users *repository.UserRepo, jwtSecret string) *UserController {
	return &UserController{Users: users, JWTSecret: jwtSecret}
}

type registerInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Create registers an account. Role defaults to user; admin accounts are
// provisioned by sending role explicitly.
func (ctl *UserController) Create(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "Email and password are required")
		return
	}

	user, err := ctl.Users.Create(input.Email, input.Password, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "User created successfully", user)
}

// Login verifies credentials, sets the session cookie and returns the token.
func (ctl *UserController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "All fields are required")
		return
	}

	user, err := ctl.Users.FindByEmail(input.Email)
	if err != nil {
		badRequest(c, "Invalid credentials")
		return
	}
	if !utils.VerifyPassword(user.Password, input.Password) {
		badRequest(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(ctl.JWTSecret, user.ID.String(), string(user.Role), user.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(utils.TokenTTL.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// Me returns the authenticated account attached by the auth middleware.
func (ctl *UserController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}
	respond(c, http.StatusOK, "User data", user)
}
