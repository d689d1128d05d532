package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
)

// AnnouncementController handles announcements
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// CreateAnnouncement publishes an announcement
// @Summary Publish an announcement
// @Description Stores the announcement and pushes it to all connected websocket clients
// @Tags announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAnnouncementRequest true "Announcement content"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement published"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [post]
func (c *AnnouncementController) CreateAnnouncement(ctx *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	announcement, err := c.announcementService.CreateAnnouncement(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(announcement))
}

// GetAnnouncements lists announcements
// @Summary List announcements
// @Description Retrieves all announcements, newest first
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [get]
func (c *AnnouncementController) GetAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetAnnouncements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(announcements))
}

// DeleteAnnouncement removes an announcement
// @Summary Delete an announcement
// @Description Removes an announcement and notifies the live feed
// @Tags announcements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Announcement ID"
// @Success 200 {object} dto.APIResponse "Announcement deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid announcement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Announcement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{id} [delete]
func (c *AnnouncementController) DeleteAnnouncement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.announcementService.DeleteAnnouncement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Announcement deleted successfully"))
}
