package models

import "time"

// AttendanceRecord is one student's mark for one date, based on the
// 'attendance_records' table. Unique per (student, date).
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id"`
	StudentID int64            `json:"studentId" db:"student_id"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status" example:"Present"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
