package models

import "time"

// Room defines the room model based on the 'rooms' table.
// Occupied must always equal the number of roster rows for the room;
// the repository maintains that inside the mutating statements themselves.
type Room struct {
	ID         int64     `json:"id" db:"id"`
	RoomNumber string    `json:"roomNumber" db:"room_number" example:"101"`
	Hostel     string    `json:"hostel" db:"hostel" example:"A"`
	Capacity   int       `json:"capacity" db:"capacity" example:"2"`
	Occupied   int       `json:"occupied" db:"occupied" example:"1"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Students is the embedded roster, loaded with the room.
	Students []RoomStudent `json:"students"`
}

// RoomStudent is one roster entry of a room, based on the 'room_students' table.
type RoomStudent struct {
	ID         int64  `json:"id" db:"id"`
	RoomID     int64  `json:"roomId" db:"room_id"`
	RollNumber string `json:"rollNumber" db:"roll_number"`
	Name       string `json:"name" db:"name"`
	UserID     *int64 `json:"userId,omitempty" db:"user_id"` // Set when the entry came from self-registration
}
