package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
)

// ComplaintController handles the complaint lifecycle
type ComplaintController struct {
	complaintService *services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// CreateComplaint files a complaint
// @Summary File a complaint
// @Description Files a complaint on behalf of the authenticated student. New complaints start as pending.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint content"
// @Success 201 {object} dto.APIResponse{data=models.Complaint} "Complaint filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	callerID, ok := middleware.CallerID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	complaint, err := c.complaintService.CreateComplaint(ctx, callerID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(complaint))
}

// GetComplaints lists complaints
// @Summary List complaints
// @Description Students receive only their own complaints. Admins and wardens receive all, optionally narrowed to one student with the studentId query parameter.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student (admin and warden only)"
// @Success 200 {object} dto.APIResponse{data=[]models.Complaint} "Complaints retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints [get]
func (c *ComplaintController) GetComplaints(ctx *gin.Context) {
	callerID, _ := middleware.CallerID(ctx)
	role, _ := middleware.CallerRole(ctx)

	var filterStudentID int64
	if raw := ctx.Query("studentId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student filter")
			errorDetail = errorDetail.WithDetails("studentId must be a positive number")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filterStudentID = id
	}

	complaints, err := c.complaintService.GetComplaints(ctx, callerID, role, filterStudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaints))
}

// UpdateComplaintStatus transitions a complaint
// @Summary Update complaint status
// @Description Moves a complaint between pending and resolved
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Complaint} "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id}/status [put]
func (c *ComplaintController) UpdateComplaintStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	complaint, err := c.complaintService.UpdateComplaintStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(complaint))
}

// DeleteComplaint removes a complaint
// @Summary Delete a complaint
// @Description Removes a complaint. Students may delete only their own.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse "Complaint deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid complaint ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /complaints/{id} [delete]
func (c *ComplaintController) DeleteComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	callerID, _ := middleware.CallerID(ctx)
	role, _ := middleware.CallerRole(ctx)

	if err := c.complaintService.DeleteComplaint(ctx, id, callerID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Complaint deleted successfully"))
}
