package dto

// UpdateUserRequest represents a user update. Role is deliberately absent:
// the role assigned at registration is immutable through this path.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=64"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Name     string `json:"name" binding:"omitempty,max=128"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}
