package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
)

// AuthController handles registration and login
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Registers an admin, warden or student. Students must supply rollNumber, hostel and roomNumber; their room placement happens atomically with the account creation. An optional profile image can be attached.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string true "Role" Enums(admin, warden, student)
// @Param name formData string false "Display name"
// @Param email formData string false "Email address"
// @Param phone formData string false "Phone number"
// @Param rollNumber formData string false "Roll number (students only)"
// @Param hostel formData string false "Hostel name (students only)"
// @Param roomNumber formData string false "Room number (students only)"
// @Param image formData file false "Profile image"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "User registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid registration data"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Username taken or room full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	// Every account carries a profile image
	image, err := ctx.FormFile("image")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image upload")
		if err == http.ErrMissingFile {
			errorDetail = errorDetail.WithDetails("A profile image is required")
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.authService.Register(ctx, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.RegisterResponse{
		Message: "User registered successfully!",
		User:    user,
	}))
}

// Login handles user login
// @Summary Log in
// @Description Verifies username, password and claimed role, and returns a signed token on success
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Logged in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 403 {object} dto.ErrorResponse "Role mismatch"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
