package dto

// CreateRoomRequest represents the payload for creating a room
type CreateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required,max=16"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Hostel     string `json:"hostel" binding:"required,max=64"`
}

// UpdateRoomRequest overwrites roomNumber, capacity and hostel
type UpdateRoomRequest struct {
	RoomNumber string `json:"roomNumber" binding:"required,max=16"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	Hostel     string `json:"hostel" binding:"required,max=64"`
}

// AddRoomStudentRequest represents a roster addition
type AddRoomStudentRequest struct {
	RollNumber string `json:"rollNumber" binding:"required,max=32"`
	Name       string `json:"name" binding:"required,max=128"`
}
