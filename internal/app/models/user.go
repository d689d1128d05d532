package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"ankit01"`                 // Unique login name
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      Role      `json:"role" db:"role" example:"student"`                         // User's role (admin, warden or student)
	Name      string    `json:"name,omitempty" db:"name" example:"Ankit Kumar"`           // Display name
	Email     string    `json:"email,omitempty" db:"email" example:"ankit@pcte.edu.in"`   // Contact email
	Phone     string    `json:"phone,omitempty" db:"phone" example:"9876543210"`          // Contact phone
	ImagePath string    `json:"image" db:"image_path" example:"uploads/profiles/a.jpg"`   // Path of the uploaded profile image
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated

	// StudentProfile is populated for users with the student role.
	StudentProfile *StudentProfile `json:"studentProfile,omitempty"`
}

// StudentProfile defines the student-only fields based on the 'student_profiles' table.
// Keeping them on a separate record means a warden or admin simply has no row here,
// instead of carrying a bundle of always-empty optional fields.
type StudentProfile struct {
	ID         int64  `json:"id" db:"id"`
	UserID     int64  `json:"userId" db:"user_id"`
	RollNumber string `json:"rollNumber" db:"roll_number" example:"2201234"`
	Hostel     string `json:"hostel" db:"hostel" example:"A"`
	RoomNumber string `json:"roomNumber" db:"room_number" example:"101"`
}
