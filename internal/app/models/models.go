package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWarden  Role = "warden"
	RoleStudent Role = "student"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWarden, RoleStudent:
		return true
	}
	return false
}

// AttendanceStatus represents a per-day attendance mark
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// IsValid reports whether s is a known attendance status.
func (s AttendanceStatus) IsValid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// ComplaintStatus represents the lifecycle state of a complaint
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "pending"
	ComplaintResolved ComplaintStatus = "resolved"
)

// IsValid reports whether s is a known complaint status.
func (s ComplaintStatus) IsValid() bool {
	return s == ComplaintPending || s == ComplaintResolved
}
