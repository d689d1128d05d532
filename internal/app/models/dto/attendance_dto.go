package dto

import "github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"

// MarkAttendanceRequest marks one student for one date. Re-marking the same
// (student, date) pair overwrites the earlier status.
type MarkAttendanceRequest struct {
	StudentID int64                   `json:"studentId" binding:"required,min=1"`
	Date      string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
}
