package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/controllers"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/middleware"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	roomController *controllers.RoomController,
	announcementController *controllers.AnnouncementController,
	attendanceController *controllers.AttendanceController,
	complaintController *controllers.ComplaintController,
	wsHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
	authLimiter *middleware.RateLimiter,
) {
	// Health and metrics live outside the versioned API
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// --- Public auth routes, rate limited against credential guessing ---
	auth := v1.Group("/users")
	auth.Use(authLimiter.Limit())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// The live announcement feed is public; clients connect before logging in
	v1.GET("/announcements/ws", wsHandler.HandleConnection)

	// Room availability is consulted during registration, before a token exists
	v1.GET("/rooms/available", roomController.GetAvailableRooms)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Users: listing and deletion are admin-only, reads and updates are
		// open to any authenticated caller (students are restricted to their
		// own record inside the controller)
		users := authenticated.Group("/users")
		{
			users.GET("/:id", userController.GetUser)
			users.PUT("/:id", userController.UpdateUser)

			usersAdmin := users.Group("")
			usersAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				usersAdmin.GET("", userController.GetUsers)
				usersAdmin.DELETE("/:id", userController.DeleteUser)
			}
		}

		// Rooms: anyone authenticated can browse, only admins mutate
		rooms := authenticated.Group("/rooms")
		{
			rooms.GET("", roomController.GetRooms)
			rooms.GET("/:id", roomController.GetRoom)
			rooms.GET("/:id/students", roomController.GetRoomStudents)

			roomsAdmin := rooms.Group("")
			roomsAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				roomsAdmin.POST("", roomController.CreateRoom)
				roomsAdmin.PUT("/:id", roomController.UpdateRoom)
				roomsAdmin.DELETE("/:id", roomController.DeleteRoom)
				roomsAdmin.POST("/:id/students", roomController.AddStudent)
				roomsAdmin.DELETE("/:id/students/:studentId", roomController.RemoveStudent)
			}
		}

		// Announcements: everyone reads, admins and wardens publish
		announcements := authenticated.Group("/announcements")
		{
			announcements.GET("", announcementController.GetAnnouncements)

			announcementsStaff := announcements.Group("")
			announcementsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden))
			{
				announcementsStaff.POST("", announcementController.CreateAnnouncement)
				announcementsStaff.DELETE("/:id", announcementController.DeleteAnnouncement)
			}
		}

		// Attendance: wardens and admins mark and read rosters, students
		// read their own history
		attendance := authenticated.Group("/attendance")
		{
			attendance.GET("/student/:studentId", attendanceController.GetAttendanceByStudent)

			attendanceStaff := attendance.Group("")
			attendanceStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden))
			{
				attendanceStaff.POST("", attendanceController.MarkAttendance)
				attendanceStaff.GET("", attendanceController.GetAttendanceByDate)
			}
		}

		// Complaints: students file and list their own, staff manage all
		complaints := authenticated.Group("/complaints")
		{
			complaints.GET("", complaintController.GetComplaints)
			complaints.DELETE("/:id", complaintController.DeleteComplaint)

			complaintsStudent := complaints.Group("")
			complaintsStudent.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				complaintsStudent.POST("", complaintController.CreateComplaint)
			}

			complaintsStaff := complaints.Group("")
			complaintsStaff.Use(authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden))
			{
				complaintsStaff.PUT("/:id/status", complaintController.UpdateComplaintStatus)
			}
		}
	}
}
