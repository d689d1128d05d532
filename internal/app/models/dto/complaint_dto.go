package dto

import "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"

// CreateComplaintRequest represents a student filing a complaint
type CreateComplaintRequest struct {
	Title       string `json:"title" binding:"required,max=256"`
	Description string `json:"description" binding:"required"`
}

// UpdateComplaintStatusRequest moves a complaint between pending and resolved
type UpdateComplaintStatusRequest struct {
	Status models.ComplaintStatus `json:"status" binding:"required,oneof=pending resolved"`
}
