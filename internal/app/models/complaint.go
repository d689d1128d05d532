package models

import "time"

// Complaint defines the complaint model based on the 'complaints' table
type Complaint struct {
	ID          int64           `json:"id" db:"id"`
	StudentID   int64           `json:"studentId" db:"student_id"`
	Title       string          `json:"title" db:"title" example:"Broken fan"`
	Description string          `json:"description" db:"description"`
	Status      ComplaintStatus `json:"status" db:"status" example:"pending"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}
