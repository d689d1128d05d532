package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/app/models/dto"
	"github.com/ankit-yt/PCTE-Hostel-Management2/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"room not found", apperrors.ErrRoomNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"announcement not found", apperrors.ErrAnnouncementNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"complaint not found", apperrors.ErrComplaintNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate user", apperrors.ErrUserExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate room", apperrors.ErrRoomExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"room full", apperrors.ErrRoomFull, http.StatusConflict, dto.ErrorCodeRoomFull},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"role mismatch", apperrors.ErrRoleMismatch, http.StatusForbidden, dto.ErrorCodeRoleMismatch},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
		{"wrapped custom error", apperrors.NewForbiddenError("students only"), http.StatusForbidden, dto.ErrorCodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON body: %v", err)
			}
			if resp.Success {
				t.Error("error response has success=true")
			}
			if resp.Error == nil {
				t.Fatal("error response carries no error detail")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorKeepsCustomMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewValidationError("date must be in YYYY-MM-DD format"))

	var resp dto.ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Error.Message != "date must be in YYYY-MM-DD format" {
		t.Errorf("message = %q, want the custom validation message", resp.Error.Message)
	}
}
