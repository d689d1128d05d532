package dto

import "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"

// RegisterRequest represents the multipart registration form. Student-only
// fields are required exactly when the claimed role is student; the binding
// layer enforces that instead of ad hoc checks inside the handler.
type RegisterRequest struct {
	Username   string      `form:"username" binding:"required,min=3,max=64"`
	Password   string      `form:"password" binding:"required,min=6"`
	Role       models.Role `form:"role" binding:"required,oneof=admin warden student"`
	Name       string      `form:"name" binding:"omitempty,max=128"`
	Email      string      `form:"email" binding:"omitempty,email"`
	Phone      string      `form:"phone" binding:"omitempty,max=32"`
	RollNumber string      `form:"rollNumber" binding:"required_if=Role student"`
	Hostel     string      `form:"hostel" binding:"required_if=Role student"`
	RoomNumber string      `form:"roomNumber" binding:"required_if=Role student"`
}

// LoginRequest represents login credentials plus the role the client claims
type LoginRequest struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=admin warden student"`
}

// LoginResponse carries the signed token and the user's identifier.
// The field is named studentId for every role; the front end relies on it.
type LoginResponse struct {
	Token     string `json:"token"`
	StudentID int64  `json:"studentId"`
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	Message string       `json:"message" example:"User registered successfully!"`
	User    *models.User `json:"user"`
}
