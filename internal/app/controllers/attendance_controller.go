package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
)

// AttendanceController handles attendance marking and queries
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// MarkAttendance records a student's attendance
// @Summary Mark attendance
// @Description Records Present or Absent for one student and date. Marking the same pair again overwrites the earlier status.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceRecord} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	record, err := c.attendanceService.MarkAttendance(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(record))
}

// GetAttendanceByDate lists marks for one date
// @Summary Get attendance for a date
// @Description Retrieves every student's mark for the given date
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Attendance retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAttendanceByDate(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing date")
		errorDetail = errorDetail.WithDetails("date query parameter is required, format YYYY-MM-DD")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetAttendanceByDate(ctx, date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}

// GetAttendanceByStudent lists one student's history
// @Summary Get a student's attendance history
// @Description Retrieves every recorded mark for one student. Students may only fetch their own history.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord} "Attendance retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/student/{studentId} [get]
func (c *AttendanceController) GetAttendanceByStudent(ctx *gin.Context) {
	studentID, err := parsePathID(ctx, "studentId")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Students can only read their own history
	role, _ := middleware.CallerRole(ctx)
	callerID, _ := middleware.CallerID(ctx)
	if role == models.RoleStudent && callerID != studentID {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		errorDetail = errorDetail.WithDetails("Students can only view their own attendance")
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
		return
	}

	records, err := c.attendanceService.GetAttendanceByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
