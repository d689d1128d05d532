package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/services"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
)

// RoomController handles room management
type RoomController struct {
	roomService *services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// CreateRoom creates a room
// @Summary Create a room
// @Description Creates an empty room in a hostel. Room numbers are unique per hostel.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=models.Room} "Room created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Room already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	room, err := c.roomService.CreateRoom(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(room))
}

// GetRooms lists rooms
// @Summary List rooms
// @Description Retrieves all rooms with their rosters, optionally filtered by hostel
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param hostel query string false "Filter by hostel"
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Rooms retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms [get]
func (c *RoomController) GetRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetRooms(ctx, ctx.Query("hostel"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rooms))
}

// GetAvailableRooms lists rooms with free places
// @Summary List available rooms
// @Description Retrieves rooms that still have at least one free place
// @Tags rooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Room} "Available rooms retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/available [get]
func (c *RoomController) GetAvailableRooms(ctx *gin.Context) {
	rooms, err := c.roomService.GetAvailableRooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rooms))
}

// GetRoom retrieves one room
// @Summary Get room by ID
// @Description Retrieves a room together with its student roster
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	room, err := c.roomService.GetRoom(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// GetRoomStudents lists a room's roster
// @Summary List students of a room
// @Description Retrieves the roster entries of one room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=[]models.RoomStudent} "Roster retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/students [get]
func (c *RoomController) GetRoomStudents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	students, err := c.roomService.GetRoomStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// UpdateRoom updates a room
// @Summary Update a room
// @Description Overwrites a room's number, capacity and hostel. Occupancy is untouched; shrinking the capacity below the current occupancy is allowed and leaves the room over capacity.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "New room values"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Room updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room number already taken in this hostel"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Description Removes a room and its roster entries. Student profiles that referenced the room keep their stored room number.
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse "Room deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid room ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Room deleted successfully"))
}

// AddStudent places a student in a room
// @Summary Add a student to a room
// @Description Adds a roster entry and increments occupancy. Fails with 409 when the room is already full; the check and the increment are a single atomic update.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.AddRoomStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Student added"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 409 {object} dto.ErrorResponse "Room is full"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/students [post]
func (c *RoomController) AddStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AddRoomStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	room, err := c.roomService.AddStudent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}

// RemoveStudent removes a student from a room
// @Summary Remove a student from a room
// @Description Removes a roster entry and recomputes the room's occupancy from the remaining entries
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param studentId path int true "Roster entry ID"
// @Success 200 {object} dto.APIResponse{data=models.Room} "Student removed"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /rooms/{id}/students/{studentId} [delete]
func (c *RoomController) RemoveStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	studentID, err := parsePathID(ctx, "studentId")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid roster entry ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	room, err := c.roomService.RemoveStudent(ctx, id, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(room))
}
