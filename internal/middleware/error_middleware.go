package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses. Every controller
// funnels its service errors through here so the status code for a given
// condition is decided in exactly one place.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		handleSentinel(c, custom.Err, custom.Message)
		return
	}
	handleSentinel(c, err, "")
}

func handleSentinel(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "User not found"))
	case errors.Is(err, apperrors.ErrRoomNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "Room not found"))
	case errors.Is(err, apperrors.ErrAnnouncementNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "Announcement not found"))
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "Complaint not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, pick(message, "Resource not found"))

	case errors.Is(err, apperrors.ErrUserExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, pick(message, "Username already taken"))
	case errors.Is(err, apperrors.ErrRoomExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, pick(message, "Room already exists in this hostel"))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, pick(message, "Resource already exists"))
	case errors.Is(err, apperrors.ErrRoomFull):
		respondError(c, http.StatusConflict, dto.ErrorCodeRoomFull, pick(message, "Room is full"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, pick(message, "Invalid username or password"))
	case errors.Is(err, apperrors.ErrRoleMismatch):
		respondError(c, http.StatusForbidden, dto.ErrorCodeRoleMismatch, pick(message, "Role does not match this account"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, pick(message, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, pick(message, "Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.ErrorCodeForbidden, pick(message, "Permission denied"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, pick(message, "Validation failed"))

	default:
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func pick(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
